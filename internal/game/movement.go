package game

// CreateFaller spawns a horizontal faller on SpawnRow in the two middle
// columns. It returns false if a faller already exists or the game is over.
// A blocked spawn cell ends the game.
func (g *GameState) CreateFaller(left, right Color) bool {
	if g.faller != nil || g.gameOver {
		return false
	}

	mid := g.columns/2 - 1
	primary := Position{Row: SpawnRow, Col: mid}
	secondary := Position{Row: SpawnRow, Col: mid + 1}

	var blocked []Position
	for _, p := range []Position{primary, secondary} {
		if !g.free(p) {
			blocked = append(blocked, p)
		}
	}
	if len(blocked) > 0 {
		g.gameOver = true
		g.logger.Debug("Spawn blocked, game over", "blocked", blocked)
		g.eventBus.Publish(NewGameOverEvent(blocked))
		return false
	}

	g.faller = &Faller{
		Primary:   Segment{Pos: primary, Color: left},
		Secondary: Segment{Pos: secondary, Color: right},
	}
	g.logger.Debug("Spawned faller", "left", left, "right", right, "row", SpawnRow, "col", mid)
	g.eventBus.Publish(NewFallerSpawnedEvent(*g.faller))
	g.refreshLanded()
	return true
}

// MoveLeft shifts the faller one column left if both destination cells are free.
func (g *GameState) MoveLeft() bool { return g.shift(-1) }

// MoveRight shifts the faller one column right if both destination cells are free.
func (g *GameState) MoveRight() bool { return g.shift(1) }

func (g *GameState) shift(dCol int) bool {
	if g.faller == nil {
		return false
	}
	next := g.faller.shifted(0, dCol)
	if !g.fits(next) {
		return false
	}
	*g.faller = next
	g.refreshLanded()
	return true
}

// Rotate toggles the faller's orientation about its primary cell. When the
// rotated shape is blocked, a single one-column shift to the left is tried
// before the rotation is refused.
//
// Horizontal to vertical keeps the primary row and column and grows downward;
// clockwise puts the left color on top. Vertical to horizontal keeps the top
// row and grows rightward; clockwise puts the bottom color on the left.
func (g *GameState) Rotate(clockwise bool) bool {
	if g.faller == nil {
		return false
	}

	f := *g.faller
	first, second := f.Primary.Color, f.Secondary.Color
	origin := f.Primary.Pos

	var next Faller
	if f.Orientation() == Horizontal {
		top, bottom := first, second
		if !clockwise {
			top, bottom = second, first
		}
		next = Faller{
			Primary:   Segment{Pos: origin, Color: top},
			Secondary: Segment{Pos: origin.Below(), Color: bottom},
		}
	} else {
		left, right := first, second
		if clockwise {
			left, right = second, first
		}
		next = Faller{
			Primary:   Segment{Pos: origin, Color: left},
			Secondary: Segment{Pos: origin.Offset(0, 1), Color: right},
		}
	}

	if !g.fits(next) {
		kicked := next.shifted(0, -1)
		if !g.fits(kicked) {
			g.logger.Debug("Rotation blocked", "orientation", f.Orientation(), "origin", origin)
			return false
		}
		g.logger.Debug("Wall kick", "from", origin.Col, "to", kicked.Primary.Pos.Col)
		next = kicked
	}

	*g.faller = next
	g.refreshLanded()
	return true
}

// FallOneStep moves an airborne faller down one row. If the faller is blocked
// it is marked landed instead and false is returned.
func (g *GameState) FallOneStep() bool {
	if g.faller == nil || g.faller.Landed {
		return false
	}
	next := g.faller.shifted(1, 0)
	if !g.fits(next) {
		g.setLanded(true)
		return false
	}
	*g.faller = next
	g.refreshLanded()
	return true
}

// Freeze writes a landed faller into the grid as capsule segments and
// resolves any matches it completes.
func (g *GameState) Freeze() bool {
	if g.faller == nil || !g.faller.Landed {
		return false
	}
	f := *g.faller
	for _, seg := range f.Segments() {
		g.grid[seg.Pos.Row][seg.Pos.Col] = NewCapsule(seg.Color)
	}
	g.faller = nil

	g.logger.Debug("Froze faller", "primary", f.Primary.Pos, "secondary", f.Secondary.Pos)
	g.eventBus.Publish(NewFallerFrozenEvent(f))
	g.HandleMatching()
	return true
}

// Tick is the idle step: freeze a landed faller or let an airborne one fall,
// then settle the grid.
func (g *GameState) Tick() {
	if g.faller != nil {
		if g.faller.Landed {
			g.Freeze()
		} else {
			g.FallOneStep()
		}
	}
	g.ApplyGravity()
}

// CreateVirus places a virus on an empty cell not covered by the faller.
// Matches it forms are resolved by the next settle.
func (g *GameState) CreateVirus(row, col int, color Color) bool {
	p := Position{Row: row, Col: col}
	if !g.free(p) || color == NoColor {
		return false
	}
	if g.faller != nil && g.faller.Covers(p) {
		return false
	}
	g.grid[row][col] = NewVirus(color)
	g.logger.Debug("Placed virus", "pos", p, "color", color)
	g.eventBus.Publish(NewVirusPlacedEvent(p, color))
	g.refreshLanded()
	return true
}

// fits reports whether both segments of f are on free grid cells.
func (g *GameState) fits(f Faller) bool {
	return g.free(f.Primary.Pos) && g.free(f.Secondary.Pos)
}

// refreshLanded recomputes the landed flag for the current position.
func (g *GameState) refreshLanded() {
	if g.faller == nil {
		return
	}
	g.setLanded(!g.fits(g.faller.shifted(1, 0)))
}

func (g *GameState) setLanded(landed bool) {
	if g.faller.Landed == landed {
		return
	}
	g.faller.Landed = landed
	if landed {
		g.logger.Debug("Faller landed", "primary", g.faller.Primary.Pos)
		g.eventBus.Publish(NewFallerLandedEvent(*g.faller))
	}
}
