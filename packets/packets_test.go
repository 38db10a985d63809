package packets_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/packets"
)

// examplePairs is the published eight-pair signal.
const examplePairs = `[1,1,3,1,1]
[1,1,5,1,1]

[[1],[2,3,4]]
[[1],4]

[9]
[[8,7,6]]

[[4,4],4,4]
[[4,4],4,4,4]

[7,7,7,7]
[7,7,7]

[]
[3]

[[[]]]
[[]]

[1,[2,[3,[4,[5,6,7]]]],8,9]
[1,[2,[3,[4,[5,6,0]]]],8,9]
`

func mustPacket(t *testing.T, line string) packets.Packet {
	t.Helper()
	p, err := packets.ParsePacket(line)
	require.NoError(t, err, "line %q", line)

	return p
}

func TestCompare_PublishedPairs(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"[1,1,3,1,1]", "[1,1,5,1,1]", -1},
		{"[[1],[2,3,4]]", "[[1],4]", -1},
		{"[9]", "[[8,7,6]]", 1},
		{"[[4,4],4,4]", "[[4,4],4,4,4]", -1},
		{"[7,7,7,7]", "[7,7,7]", 1},
		{"[]", "[3]", -1},
		{"[[[]]]", "[[]]", 1},
		{"[1,[2,[3,[4,[5,6,7]]]],8,9]", "[1,[2,[3,[4,[5,6,0]]]],8,9]", 1},
	}

	for _, tc := range cases {
		a, b := mustPacket(t, tc.a), mustPacket(t, tc.b)
		assert.Equal(t, tc.want, packets.Compare(a, b), "%s vs %s", tc.a, tc.b)
		assert.Equal(t, -tc.want, packets.Compare(b, a), "%s vs %s reversed", tc.b, tc.a)
	}
}

// TestCompare_PromotionTie: integer promotion on both sides can make
// structurally different packets tie.
func TestCompare_PromotionTie(t *testing.T) {
	a := mustPacket(t, "[1,[2]]")
	b := mustPacket(t, "[[1],2]")
	assert.Zero(t, packets.Compare(a, b))
}

func TestParsePacket_BareInteger(t *testing.T) {
	p := mustPacket(t, "5")
	assert.Equal(t, packets.Packet{IsInt: true, Int: 5}, p)
}

func TestParsePacket_Errors(t *testing.T) {
	cases := map[string]string{
		"Unterminated":  "[1,",
		"Float":         "[1.5]",
		"StringElement": `[1,"a"]`,
		"BoolElement":   "[true]",
		"NullElement":   "[null]",
		"Object":        `{"a":1}`,
		"TrailingData":  "[1] [2]",
	}

	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := packets.ParsePacket(line)
			assert.ErrorIs(t, err, packets.ErrBadPacket)
		})
	}
}

func TestSumInOrder_Example(t *testing.T) {
	got, err := packets.SumInOrder(strings.NewReader(examplePairs))
	require.NoError(t, err)
	assert.Equal(t, 13, got)
}

func TestDecoderKey_Example(t *testing.T) {
	got, err := packets.DecoderKey(strings.NewReader(examplePairs))
	require.NoError(t, err)
	assert.Equal(t, 140, got)
}

func TestSumInOrder_BadGrouping(t *testing.T) {
	_, err := packets.SumInOrder(strings.NewReader("[1]\n[2]\n[3]\n"))
	assert.ErrorIs(t, err, packets.ErrBadPacket)

	_, err = packets.SumInOrder(strings.NewReader("[1]\n"))
	assert.ErrorIs(t, err, packets.ErrBadPacket)
}

func TestSumInOrder_Empty(t *testing.T) {
	got, err := packets.SumInOrder(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, got)
}
