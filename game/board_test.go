package game

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type placement struct {
	c    Color
	x, y int
}

func newTestBoard(t *testing.T, size int, stones ...placement) *Board {
	t.Helper()
	b, err := NewBoard(size)
	require.NoError(t, err)
	for _, p := range stones {
		b.PlaceStone(p.c, b.VertexOf(p.x, p.y))
	}
	require.NoError(t, b.Validate())
	return b
}

func full3x3(t *testing.T) *Board {
	return newTestBoard(t, 3,
		placement{Black, 1, 1},
		placement{Black, 2, 1},
		placement{White, 0, 1},
		placement{White, 1, 0},
		placement{Black, 2, 2},
	)
}

func full5x5(t *testing.T) *Board {
	return newTestBoard(t, 5,
		placement{Black, 1, 1},
		placement{Black, 2, 1},
		placement{White, 3, 1},
		placement{White, 2, 2},
		placement{Black, 3, 2},
		placement{Black, 0, 3},
		placement{White, 2, 3},
		placement{White, 2, 4},
	)
}

func full9x9(t *testing.T) *Board {
	return newTestBoard(t, 9,
		placement{White, 5, 4},
		placement{Black, 5, 3},
		placement{White, 4, 5},
		placement{Black, 2, 2},
		placement{White, 4, 3},
		placement{Black, 1, 2},
		placement{White, 6, 3},
		placement{Black, 2, 3},
		placement{White, 5, 2},
		placement{Black, 0, 0},
		placement{White, 6, 6},
	)
}

/*
      a b c d e
    5 . . O O .  5
    4 . . O . O  4
    3 O O O O .  3
    2 . . O . .  2
    1 . . O . .  1
      a b c d e
*/
func allWhite5x5(t *testing.T) *Board {
	return newTestBoard(t, 5,
		placement{White, 1, 2},
		placement{White, 2, 1},
		placement{White, 2, 2},
		placement{White, 2, 3},
		placement{White, 2, 4},
		placement{White, 3, 2},
		placement{White, 3, 4},
		placement{White, 4, 3},
		placement{White, 0, 2},
		placement{White, 2, 0},
	)
}

func TestNewBoardSizes(t *testing.T) {
	for _, size := range []int{MinSize, 9, 13, 19, MaxSize} {
		b, err := NewBoard(size)
		require.NoError(t, err, "size %d", size)
		assert.Equal(t, size, b.Size())
		assert.Equal(t, size*size, b.EmptyCount())
		assert.NoError(t, b.Validate())
	}

	for _, size := range []int{-1, 0, 1, MaxSize + 1, 100} {
		_, err := NewBoard(size)
		require.Error(t, err, "size %d", size)
		assert.True(t, errors.Is(err, ErrInvalidSize))
	}
}

func TestResetDiscardsPosition(t *testing.T) {
	b := full5x5(t)
	require.NoError(t, b.Reset(7))
	assert.Equal(t, 7, b.Size())
	assert.Equal(t, 49, b.EmptyCount())
	assert.Equal(t, uint64(0), b.Hash())
	assert.Equal(t, 0, b.Prisoners(Black))
	assert.NoError(t, b.Validate())

	err := b.Reset(1)
	assert.Equal(t, ErrInvalidSize, errors.Cause(err))
}

func TestVertexCoordinates(t *testing.T) {
	b := newTestBoard(t, 9)
	for y := -1; y <= 9; y++ {
		for x := -1; x <= 9; x++ {
			v := b.VertexOf(x, y)
			gx, gy := b.CoordinatesOf(v)
			assert.Equal(t, x, gx)
			assert.Equal(t, y, gy)

			onBoard := x >= 0 && y >= 0 && x < 9 && y < 9
			assert.Equal(t, onBoard, b.IsOnBoard(v))
			if !onBoard {
				assert.Equal(t, Invalid, b.At(v))
			}
		}
	}

	// neighbours differ by one step along a row or a column
	v := b.VertexOf(4, 4)
	assert.Equal(t, b.VertexOf(5, 4), v+1)
	assert.Equal(t, b.VertexOf(4, 5)-v, v-b.VertexOf(4, 3))

	assert.Panics(t, func() { b.VertexOf(-2, 0) })
	assert.Panics(t, func() { b.VertexOf(0, 10) })
}

func TestSerializeEmpty3x3(t *testing.T) {
	b := newTestBoard(t, 3)
	expected := "\n" +
		"   a b c \n" +
		" 3 . . .  3\n" +
		" 2 . . .  2\n" +
		" 1 . . .  1\n" +
		"   a b c \n\n"
	assert.Equal(t, expected, b.SerializeBoard())
	assert.Equal(t, 3, b.Size())
}

func TestSerializeSemiFilled5x5(t *testing.T) {
	b := full5x5(t)
	expected := "\n" +
		"   a b c d e \n" +
		" 5 . . O . .  5\n" +
		" 4 X . O . .  4\n" +
		" 3 . . O X .  3\n" +
		" 2 . X X O .  2\n" +
		" 1 . . . . .  1\n" +
		"   a b c d e \n\n"
	assert.Equal(t, expected, b.SerializeBoard())
}

func TestSerializeSemiFilled9x9(t *testing.T) {
	b := full9x9(t)
	expected := "\n" +
		"   a b c d e f g h j \n" +
		" 9 . . . . . . . . .  9\n" +
		" 8 . . . . . . . . .  8\n" +
		" 7 . . + . + . O . .  7\n" +
		" 6 . . . . O . . . .  6\n" +
		" 5 . . + . + O + . .  5\n" +
		" 4 . . X . O . O . .  4\n" +
		" 3 . X X . + O + . .  3\n" +
		" 2 . . . . . . . . .  2\n" +
		" 1 X . . . . . . . .  1\n" +
		"   a b c d e f g h j \n\n"
	assert.Equal(t, expected, b.SerializeBoard())
	assert.Equal(t, expected, b.String())
	assert.Equal(t, 1, b.Prisoners(White))
	assert.Equal(t, 0, b.Prisoners(Black))
}

func TestSerializeShape(t *testing.T) {
	for _, size := range []int{2, 5, 9, 13, 19, 25} {
		b := newTestBoard(t, size)
		r := rand.New(rand.NewSource(int64(size)))
		playRandom(t, b, r, size*size/2)

		out := b.SerializeBoard()
		assert.Equal(t, out, b.SerializeBoard(), "serializing twice must not change the output")

		lines := strings.Split(strings.TrimPrefix(out, "\n"), "\n")
		// header, size rows, footer, two empty strings from the trailing "\n\n"
		require.Len(t, lines, size+4)
		assert.Equal(t, lines[0], lines[size+1])
		assert.Len(t, strings.Fields(lines[0]), size)
		assert.NotContains(t, lines[0], "i")

		for i, line := range lines[1 : size+1] {
			fields := strings.Fields(line)
			require.Len(t, fields, size+2, "row %d: %q", i, line)
			assert.Equal(t, fields[0], fields[size+1])
			for _, g := range fields[1 : size+1] {
				assert.Contains(t, []string{".", "X", "O", "+"}, g)
			}
		}
	}
}

func TestStarPoints(t *testing.T) {
	count := func(size int) int {
		var n int
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if IsStarPoint(size, x, y) {
					n++
				}
			}
		}
		return n
	}
	assert.Equal(t, 0, count(5))
	assert.Equal(t, 0, count(8))
	assert.Equal(t, 0, count(10))
	assert.Equal(t, 9, count(9))
	assert.Equal(t, 9, count(13))
	assert.Equal(t, 9, count(19))

	assert.True(t, IsStarPoint(19, 3, 3))
	assert.True(t, IsStarPoint(19, 9, 9))
	assert.True(t, IsStarPoint(19, 15, 9))
	assert.False(t, IsStarPoint(19, 2, 2))
	assert.True(t, IsStarPoint(9, 2, 6))
}

func TestCountPliberties5x5(t *testing.T) {
	b := full5x5(t)
	cases := []struct {
		x, y, want int
	}{
		{0, 0, 2},
		{1, 1, 3},
		{2, 1, 1},
		{3, 1, 2},
		{4, 1, 2},
		{2, 2, 1},
		{3, 2, 2},
		{0, 3, 3},
		{1, 2, 2},
		{4, 3, 3},
		{4, 4, 2},
		{5, 4, 0}, // sentinel ring
	}
	for _, c := range cases {
		assert.Equal(t, c.want, b.CountPliberties(b.VertexOf(c.x, c.y)), "(%d, %d)", c.x, c.y)
	}
}

func TestExactLiberties(t *testing.T) {
	b := full3x3(t)
	assert.Equal(t, 2, b.Liberties(b.VertexOf(1, 1)))
	assert.Equal(t, 3, b.GroupSize(b.VertexOf(2, 2)))
	assert.Equal(t, 2, b.Liberties(b.VertexOf(0, 1)))
	assert.Equal(t, 2, b.Liberties(b.VertexOf(1, 0)))
	assert.Equal(t, 0, b.Liberties(b.VertexOf(0, 0)))
	assert.Equal(t, -1, b.GroupOf(b.VertexOf(0, 0)))
	assert.ElementsMatch(t,
		[]int{b.VertexOf(1, 1), b.VertexOf(2, 1), b.VertexOf(2, 2)},
		b.Stones(b.VertexOf(2, 1)))

	// pseudo-liberties count per vertex while exact liberties are per group
	b5 := full5x5(t)
	v := b5.VertexOf(2, 1)
	assert.Equal(t, 1, b5.CountPliberties(v))
	assert.Equal(t, 4, b5.Liberties(v))
}

func TestPlaceStoneCaptures(t *testing.T) {
	// corner capture
	b := newTestBoard(t, 5,
		placement{White, 0, 0},
		placement{Black, 1, 0},
	)
	assert.Equal(t, 1, b.Liberties(b.VertexOf(0, 0)))
	captured := b.PlaceStone(Black, b.VertexOf(0, 1))
	assert.Equal(t, 1, captured)
	assert.Equal(t, Empty, b.At(b.VertexOf(0, 0)))
	assert.Equal(t, 1, b.Prisoners(Black))
	assert.Equal(t, 3, b.Liberties(b.VertexOf(1, 0)))
	assert.Equal(t, 3, b.Liberties(b.VertexOf(0, 1)))
	require.NoError(t, b.Validate())

	// two groups captured by one stone, freed points go back to the capturer
	b = newTestBoard(t, 5,
		placement{White, 0, 1},
		placement{White, 1, 0},
		placement{Black, 0, 2},
		placement{Black, 1, 1},
		placement{Black, 2, 0},
	)
	captured = b.PlaceStone(Black, b.VertexOf(0, 0))
	assert.Equal(t, 2, captured)
	assert.Equal(t, Empty, b.At(b.VertexOf(0, 1)))
	assert.Equal(t, Empty, b.At(b.VertexOf(1, 0)))
	assert.Equal(t, 2, b.Liberties(b.VertexOf(0, 0)))
	assert.Equal(t, 2, b.CountPliberties(b.VertexOf(0, 0)))
	require.NoError(t, b.Validate())
}

func TestPlaceStoneMergesGroups(t *testing.T) {
	b := newTestBoard(t, 9,
		placement{Black, 2, 4},
		placement{Black, 4, 4},
		placement{Black, 3, 3},
		placement{Black, 3, 5},
	)
	for _, p := range []placement{{Black, 2, 4}, {Black, 4, 4}, {Black, 3, 3}, {Black, 3, 5}} {
		assert.Equal(t, 4, b.Liberties(b.VertexOf(p.x, p.y)))
	}

	centre := b.VertexOf(3, 4)
	assert.Equal(t, 0, b.PlaceStone(Black, centre))
	assert.Equal(t, 5, b.GroupSize(centre))
	assert.Equal(t, 8, b.Liberties(centre))
	assert.Len(t, b.Stones(b.VertexOf(3, 5)), 5)
	for _, p := range []placement{{Black, 2, 4}, {Black, 4, 4}, {Black, 3, 3}, {Black, 3, 5}} {
		assert.Equal(t, b.GroupOf(centre), b.GroupOf(b.VertexOf(p.x, p.y)))
	}
	require.NoError(t, b.Validate())
}

func TestPlaceStoneContract(t *testing.T) {
	b := full5x5(t)
	before := b.SerializeBoard()

	assert.Panics(t, func() { b.PlaceStone(Black, b.VertexOf(1, 1)) }, "occupied")
	assert.Panics(t, func() { b.PlaceStone(White, b.VertexOf(-1, 2)) }, "border")
	assert.Panics(t, func() { b.PlaceStone(Empty, b.VertexOf(0, 0)) }, "empty colour")
	assert.Panics(t, func() { b.PlaceStone(Invalid, b.VertexOf(0, 0)) }, "invalid colour")
	assert.Panics(t, func() { b.IsSuicide(b.VertexOf(1, 1), Black) })

	assert.Equal(t, before, b.SerializeBoard())
	assert.NoError(t, b.Validate())
}

func TestIsSuicideNotForBlack(t *testing.T) {
	b := newTestBoard(t, 5, placement{White, 2, 2})
	assert.False(t, b.IsSuicide(b.VertexOf(1, 1), Black))
	assert.False(t, b.IsSuicide(b.VertexOf(2, 1), Black))
}

func TestIsSuicideInAllWhiteField(t *testing.T) {
	b := allWhite5x5(t)
	assert.False(t, b.IsSuicide(b.VertexOf(1, 1), Black))
	assert.True(t, b.IsSuicide(b.VertexOf(3, 3), Black))
	assert.True(t, b.IsSuicide(b.VertexOf(4, 4), Black))
	assert.False(t, b.IsSuicide(b.VertexOf(4, 2), Black))

	// white filling its own eye is never suicide while the group has other liberties
	assert.False(t, b.IsSuicide(b.VertexOf(3, 3), White))
}

func TestIsSuicideCaptureWins(t *testing.T) {
	// a1 has no empty neighbours but playing there captures the white stone on b1
	b := newTestBoard(t, 5,
		placement{White, 1, 0},
		placement{White, 0, 1},
		placement{Black, 2, 0},
		placement{Black, 1, 1},
	)
	v := b.VertexOf(0, 0)
	assert.Equal(t, 0, b.CountPliberties(v))
	assert.Equal(t, 1, b.Liberties(b.VertexOf(1, 0)))
	assert.False(t, b.IsSuicide(v, Black))
	assert.False(t, b.IsSuicide(v, White), "white connects to its own stones")

	assert.Equal(t, 1, b.PlaceStone(Black, v))
	assert.Equal(t, 1, b.Liberties(v))
	require.NoError(t, b.Validate())
}

func TestIsSuicideMultiStone(t *testing.T) {
	// both black stones have their last liberty at (0, 0)
	b := newTestBoard(t, 5,
		placement{Black, 1, 0},
		placement{Black, 0, 1},
		placement{White, 2, 0},
		placement{White, 1, 1},
		placement{White, 0, 2},
	)
	v := b.VertexOf(0, 0)
	assert.True(t, b.IsSuicide(v, Black))
	assert.False(t, b.IsSuicide(v, White), "white captures both black stones")

	clone := b.Clone()
	assert.Equal(t, 0, clone.PlaceStone(Black, v))
	assert.Equal(t, 0, clone.Liberties(v), "the placed group is not removed")
	assert.Equal(t, 3, clone.GroupSize(v))
	assert.NoError(t, clone.Validate())

	assert.Equal(t, 2, b.PlaceStone(White, v))
	assert.Equal(t, 2, b.Liberties(v))
	require.NoError(t, b.Validate())
}

func TestIsEye(t *testing.T) {
	b := allWhite5x5(t)
	assert.True(t, b.IsEye(White, b.VertexOf(3, 3)))
	assert.True(t, b.IsEye(White, b.VertexOf(4, 4)))
	assert.False(t, b.IsEye(White, b.VertexOf(0, 0)), "corner touches only empty points")
	assert.False(t, b.IsEye(Black, b.VertexOf(3, 3)))
	assert.False(t, b.IsEye(White, b.VertexOf(2, 2)), "occupied")
}

func TestAreaScore(t *testing.T) {
	b := full5x5(t)
	assert.Equal(t, float32(-6.5), b.AreaScore(6.5))
	assert.Equal(t, float32(-0.5), b.AreaScore(0.5))
	assert.Equal(t, float32(-9.0), b.AreaScore(9.0))
}

func TestAreaScoreOnWhiteField(t *testing.T) {
	b := allWhite5x5(t)
	assert.Equal(t, float32(-31.5), b.AreaScore(6.5))
	assert.Equal(t, float32(-25.5), b.AreaScore(0.5))
	assert.Equal(t, float32(-34.0), b.AreaScore(9.0))
}

func TestAreaScoreOnSemiFilled9x9(t *testing.T) {
	b := full9x9(t)
	assert.Equal(t, float32(-9.5), b.AreaScore(6.5))
	assert.Equal(t, float32(-3.5), b.AreaScore(0.5))
	assert.Equal(t, float32(-12.0), b.AreaScore(9.0))

	black, white := b.Area()
	assert.Equal(t, 4, black)
	assert.Equal(t, 7, white, "six stones and the point left by the capture")
}

func TestAreaScoreEmptyAndSmall(t *testing.T) {
	b := newTestBoard(t, 9)
	assert.Equal(t, float32(-7.5), b.AreaScore(7.5), "an empty board is all dame")

	b = newTestBoard(t, 9, placement{Black, 4, 4})
	assert.Equal(t, float32(81), b.AreaScore(0))

	b = full3x3(t)
	black, white := b.Area()
	assert.Equal(t, 3, black)
	assert.Equal(t, 3, white)
	assert.Equal(t, float32(-0.5), b.AreaScore(0.5))

	own := b.Ownership()
	require.Len(t, own, 9)
	assert.Equal(t, White, own[0], "a1 borders only white")
	assert.Equal(t, Empty, own[2], "c1 borders both colours")
	assert.Equal(t, Black, own[4])
}

func TestAreaScoreAffineInKomi(t *testing.T) {
	boards := []*Board{full3x3(t), full5x5(t), full9x9(t), allWhite5x5(t)}
	komis := []float32{-3, 0, 0.5, 5.5, 6.5, 7.5}
	for _, b := range boards {
		for _, k1 := range komis {
			for _, k2 := range komis {
				assert.Equal(t, k2-k1, b.AreaScore(k1)-b.AreaScore(k2))
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := full9x9(t)
	c := b.Clone()
	assert.True(t, b.Eq(c))
	assert.Equal(t, b.Hash(), c.Hash())

	c.PlaceStone(Black, c.VertexOf(8, 8))
	assert.False(t, b.Eq(c))
	assert.NotEqual(t, b.Hash(), c.Hash())
	assert.Equal(t, Empty, b.At(b.VertexOf(8, 8)))
	assert.NoError(t, b.Validate())
	assert.NoError(t, c.Validate())
}

func TestHashFollowsStones(t *testing.T) {
	// the same stones reached through a capture hash the same as placed directly
	b := newTestBoard(t, 5,
		placement{White, 0, 0},
		placement{Black, 1, 0},
		placement{Black, 0, 1},
	)
	direct := newTestBoard(t, 5,
		placement{Black, 1, 0},
		placement{Black, 0, 1},
	)
	assert.Equal(t, direct.Hash(), b.Hash())
	assert.True(t, direct.Eq(b))
}

func TestValidateReportsCorruption(t *testing.T) {
	b := full5x5(t)
	v := b.VertexOf(2, 2)
	b.libs[b.parent[v]] += 3
	b.hash ^= 1
	err := b.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "liberties")
	assert.Contains(t, err.Error(), "hash")
}

// playRandom plays up to n random legal moves, alternating colours, and checks
// the incremental state against a recomputation after every move.
func playRandom(t *testing.T, b *Board, r *rand.Rand, n int) {
	t.Helper()
	color := Black
	for i := 0; i < n; i++ {
		empties := b.Empties()
		r.Shuffle(len(empties), func(i, j int) { empties[i], empties[j] = empties[j], empties[i] })
		played := false
		for _, v := range empties {
			if b.IsSuicide(v, color) {
				continue
			}
			b.PlaceStone(color, v)
			played = true
			break
		}
		if !played {
			return
		}
		require.NoError(t, b.Validate(), "after move %d", i)
		color = color.Opponent()
	}
}

func TestRandomPlayoutsStayConsistent(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for game := 0; game < 20; game++ {
		size := 5 + game%3*2
		b := newTestBoard(t, size)
		color := Black
		for move := 0; move < size*size*2; move++ {
			empties := b.Empties()
			if len(empties) == 0 {
				break
			}
			v := empties[r.Intn(len(empties))]

			trial := b.Clone()
			captured := trial.PlaceStone(color, v)
			suicide := b.IsSuicide(v, color)
			assert.Equal(t, trial.Liberties(v) == 0, suicide, "game %d move %d", game, move)
			if captured > 0 {
				assert.False(t, suicide, "a capture is never suicide")
			}
			require.NoError(t, trial.Validate())

			for _, e := range b.Empties() {
				assert.LessOrEqual(t, b.CountPliberties(e), 4)
			}

			if !suicide {
				b.PlaceStone(color, v)
				require.NoError(t, b.Validate(), "game %d move %d", game, move)
			}
			color = color.Opponent()
		}
	}
}
