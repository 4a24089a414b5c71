package puzzle

// The fixed recipes the solver composes. Each is a short closed tour of the
// blank around one target tile: it advances the tile exactly one cell (or
// performs one fixed rotation), returns the blank to the equivalent position
// relative to the tile, and touches nothing outside a two-row or two-column
// window next to the tile. That locality is what preserves already-finalized
// rows and columns.
var (
	// nudgeRight/nudgeLeft advance a tile one column, starting and ending
	// with the blank horizontally adjacent to the tile on the trailing side.
	// The blank loops through the row below, so they require a row under the
	// tile; the Bottom variants loop through the row above instead.
	nudgeRight       = []Move{MoveDown, MoveRight, MoveRight, MoveUp, MoveLeft}
	nudgeLeft        = []Move{MoveDown, MoveLeft, MoveLeft, MoveUp, MoveRight}
	nudgeRightBottom = []Move{MoveUp, MoveRight, MoveRight, MoveDown, MoveLeft}
	nudgeLeftBottom  = []Move{MoveUp, MoveLeft, MoveLeft, MoveDown, MoveRight}

	// raiseTile advances a tile one row up, starting and ending with the
	// blank directly below it. The blank loops through the column to the
	// right; raiseTileLastCol loops left for tiles in the last column.
	raiseTile        = []Move{MoveRight, MoveUp, MoveUp, MoveLeft, MoveDown}
	raiseTileLastCol = []Move{MoveLeft, MoveUp, MoveUp, MoveRight, MoveDown}

	// raiseSetupRight brings the blank from the left side of a tile to
	// directly above it, looping through the columns to the tile's right so
	// the partially finalized row above stays untouched.
	raiseSetupRight = []Move{MoveDown, MoveRight, MoveRight, MoveUp, MoveUp, MoveLeft}

	// lowerTileRight/lowerTileLeft advance a tile one row down, starting and
	// ending with the blank directly above it, looping right or left.
	lowerTileRight = []Move{MoveRight, MoveDown, MoveDown, MoveLeft, MoveUp}
	lowerTileLeft  = []Move{MoveLeft, MoveDown, MoveDown, MoveRight, MoveUp}

	// dropIntoRow moves a tile from the corner cell of its own row one row
	// down to the staging cell, leaving the blank beside it at (i+1, N-2).
	// It starts with the blank at (i, N-2).
	dropIntoRow = []Move{MoveDown, MoveRight, MoveUp, MoveLeft, MoveDown}

	// rowTailClose rotates the staged pair into the row tail: it expects
	// the tile for (i, N-2) staged at (i+1, N-1), the tile for (i, N-1)
	// parked at (i+2, N-1) and the blank at (i, N-2), and finishes row i
	// with the blank left at (i+1, N-1).
	rowTailClose = []Move{
		MoveRight, MoveDown, MoveDown, MoveLeft,
		MoveUp, MoveUp, MoveRight, MoveDown,
	}

	// quadRotation cyclically permutes the three tiles of a 2x2 block around
	// the blank, which must start at the block's bottom-right cell. Three
	// applications return the block to its initial state.
	quadRotation = []Move{MoveLeft, MoveUp, MoveRight, MoveDown}

	// pairStacked places a bottom-row column pair when the lower tile sits
	// directly on top of the parked upper tile; the blank starts at
	// (M-2, i+1). pairAdjacent covers the lower tile parked at (M-2, i+1)
	// with the blank at (M-2, i).
	pairStacked = []Move{
		MoveLeft, MoveDown, MoveRight, MoveRight, MoveUp, MoveLeft, MoveDown,
		MoveLeft, MoveUp, MoveRight, MoveDown, MoveRight, MoveUp, MoveLeft,
		MoveDown, MoveRight, MoveUp, MoveLeft, MoveLeft, MoveDown, MoveRight,
	}
	pairAdjacent = []Move{
		MoveDown, MoveRight, MoveRight, MoveUp, MoveLeft, MoveDown, MoveLeft,
		MoveUp, MoveRight, MoveDown, MoveRight, MoveUp, MoveLeft, MoveDown,
		MoveRight, MoveUp, MoveLeft, MoveLeft, MoveDown, MoveRight,
	}

	// pairStackedAcross and pairAdjacentAcross are the 90-degree transposed pair
	// recipes (rows and columns swapped) used by the two-column row finisher.
	pairStackedAcross = []Move{
		MoveUp, MoveRight, MoveDown, MoveDown, MoveLeft, MoveUp, MoveRight,
		MoveUp, MoveLeft, MoveDown, MoveRight, MoveDown, MoveLeft, MoveUp,
		MoveRight, MoveDown, MoveLeft, MoveUp, MoveUp, MoveRight, MoveDown,
	}
	pairAdjacentAcross = []Move{
		MoveRight, MoveDown, MoveDown, MoveLeft, MoveUp, MoveRight, MoveUp,
		MoveLeft, MoveDown, MoveRight, MoveDown, MoveLeft, MoveUp, MoveRight,
		MoveDown, MoveLeft, MoveUp, MoveUp, MoveRight, MoveDown,
	}

	// cornerRescue finishes row M-3 when the tile for (M-3, N-2) landed on
	// the row's open corner cell (M-3, N-1) while the corner tile sits
	// parked at (M-3, N-2). The blank starts at (M-2, N-2) and ends at
	// (M-1, N-1).
	cornerRescue = []Move{
		MoveUp, MoveRight, MoveDown, MoveDown, MoveLeft, MoveUp, MoveRight,
		MoveDown, MoveLeft, MoveUp, MoveUp, MoveRight, MoveDown, MoveLeft,
		MoveUp, MoveRight, MoveDown, MoveDown, MoveLeft, MoveUp, MoveUp,
		MoveRight, MoveDown, MoveDown,
	}
)

// horizontalNudge selects the one-column nudge for the given travel
// direction, keyed on whether the tile sits on the bottom row (the blank
// loop has to stay inside the grid).
func horizontalNudge(toRight, bottomRow bool) []Move {
	switch {
	case toRight && bottomRow:
		return nudgeRightBottom
	case toRight:
		return nudgeRight
	case bottomRow:
		return nudgeLeftBottom
	default:
		return nudgeLeft
	}
}

// lowerTileNudge selects the one-row descent keyed on which side of the tile
// the blank can loop through.
func lowerTileNudge(viaRight bool) []Move {
	if viaRight {
		return lowerTileRight
	}
	return lowerTileLeft
}
