package save

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"initerse/internal/tower"
	"initerse/internal/utils"
	"initerse/internal/world"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSession = uuid.MustParse("6f1c2a9e-0d4b-4c3e-9a57-2b8e1f0c7d11")

func sampleWorld(t *testing.T) *world.World {
	t.Helper()
	w := world.New(world.DefaultOptions())
	cells := []struct {
		c   utils.Coord
		typ tower.Type
		buf float64
	}{
		{utils.Coord{X: 0, Y: 0}, tower.Electron, 2},
		{utils.Coord{X: -5, Y: 3}, tower.StringCreator, 0.1},
		{utils.Coord{X: 7, Y: -2}, tower.AntimatterCollector, 12.5},
		{utils.Coord{X: 1 << 20, Y: -(1 << 20)}, tower.Energy, 3e9},
	}
	for _, cell := range cells {
		m, ok := w.Place(cell.c, cell.typ)
		require.True(t, ok)
		m.Buffer = cell.buf
	}
	return w
}

// build assembles a save with a valid checksum around the given records.
func build(records ...string) string {
	var sb strings.Builder
	sb.WriteString(headerPrefix + testSession.String() + "\n")
	sum := xxhash.New()
	for _, r := range records {
		sb.WriteString(r + "\n")
		_, _ = sum.WriteString(r + "\n")
	}
	fmt.Fprintf(&sb, "%s%016x\n", sumPrefix, sum.Sum64())
	return sb.String()
}

func TestEncodeDecodeKeepsEveryMachine(t *testing.T) {
	w := sampleWorld(t)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, w, testSession))

	snap, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, testSession, snap.Session)
	require.Len(t, snap.Machines, w.Len())
	w.Each(func(c utils.Coord, m *tower.Machine) {
		got, ok := snap.Machines[c]
		require.True(t, ok, "cell %v", c)
		assert.Equal(t, m.Type(), got.Type())
		assert.Equal(t, m.Buffer, got.Buffer)
		assert.Equal(t, m.Rate, got.Rate)
	})
}

func TestEncodeIsRowOrdered(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleWorld(t), testSession))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], headerPrefix))
	assert.True(t, strings.HasPrefix(lines[1], "1048576\t-1048576\tEnergy\t"))
	assert.True(t, strings.HasPrefix(lines[2], "7\t-2\tAntimatterCollector\t"))
	assert.Equal(t, "0\t0\tElectron\tbuffer: 2; rate: 1", lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "-5\t3\tStringCreator\t"))
	assert.True(t, strings.HasPrefix(lines[5], sumPrefix))
}

func TestEncodeEmptyWorld(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, world.New(world.DefaultOptions()), testSession))

	snap, err := Decode(&buf)
	require.NoError(t, err)
	assert.Empty(t, snap.Machines)
}

func TestDecodeRejects(t *testing.T) {
	valid := "0\t0\tElectron\tbuffer: 2; rate: 1"
	cases := []struct {
		name string
		data string
		want error
	}{
		{"empty input", "", ErrMalformed},
		{"bad header", strings.Replace(build(valid), "#initerse-save", "#other", 1), ErrMalformed},
		{"bad session", strings.Replace(build(valid), testSession.String(), "not-a-uuid", 1), ErrMalformed},
		{"too few fields", build("0\t0\tElectron"), ErrMalformed},
		{"bad coordinate", build("x\t0\tElectron\tbuffer: 2; rate: 1"), ErrMalformed},
		{"coordinate overflow", build("4294967296\t0\tElectron\tbuffer: 2; rate: 1"), ErrMalformed},
		{"unknown type", build("0\t0\tPhoton\tbuffer: 2; rate: 1"), tower.ErrUnknownType},
		{"empty record", build("0\t0\tEmpty\t"), ErrMalformed},
		{"bad payload", build("0\t0\tElectron\tbuffer: two; rate: 1"), tower.ErrMalformedPayload},
		{"duplicate", build(valid, "0\t0\tEnergy\tbuffer: 1; rate: 1"), ErrMalformed},
		{"missing checksum", headerPrefix + testSession.String() + "\n" + valid + "\n", ErrMalformed},
		{"checksum mismatch", strings.Replace(build(valid), "buffer: 2;", "buffer: 3;", 1), ErrChecksum},
		{"data after checksum", build(valid) + valid + "\n", ErrMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap, err := Decode(strings.NewReader(tc.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, snap.Machines)
		})
	}
}

func TestDecodeToleratesTrailingBlankLines(t *testing.T) {
	snap, err := Decode(strings.NewReader(build("3\t4\tAntimatterCollector\tbuffer: 1.5") + "\n\n"))
	require.NoError(t, err)
	assert.Equal(t, 1.5, snap.Machines[utils.Coord{X: 3, Y: 4}].Buffer)
}
