// Package game implements the falling-capsule puzzle engine.
//
// The main type is GameState, which owns a rows×columns grid of viruses and
// settled capsule segments plus at most one active Faller. Every operation is
// synchronous and deterministic; front ends call into it and read it back for
// display.
//
// # Basic Usage
//
//	g, err := game.New(8, 6, game.ConfigEmpty, nil)
//	if err != nil {
//	    return err
//	}
//	g.CreateFaller(game.Red, game.Blue)
//	g.Rotate(true)
//	g.MoveLeft()
//	g.Tick() // fall one row, or freeze once landed, then settle
//
// # Faller Lifecycle
//
// A faller is absent, falling or landed. CreateFaller spawns it on SpawnRow;
// MoveLeft, MoveRight and Rotate reposition it and recompute the landed flag;
// FallOneStep lowers it; Freeze writes a landed faller into the grid. A spawn
// onto an occupied cell sets GameOver permanently.
//
// # Settling
//
// Freeze runs HandleMatching, which clears every maximal same-color run of
// MinRun or more and lets capsule segments fall, repeating until no run
// remains. ApplyGravity first drops capsules and then does the same. Viruses
// never move.
//
// # Events
//
// Pass WithEventBus to observe spawns, landings, freezes, clears (one event
// per cascade step), virus placement, the clear that removes the last virus,
// and game over.
package game
