// internal/save/codec.go
package save

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"initerse/internal/tower"
	"initerse/internal/utils"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

var (
	// ErrMalformed covers every structural problem of a save: bad header,
	// bad record, unknown or Empty type, duplicate coordinate, missing sum.
	ErrMalformed = errors.New("malformed save")
	// ErrChecksum is returned when the records do not match the trailing sum.
	ErrChecksum = errors.New("save checksum mismatch")
	// ErrNotFound is returned by stores for names that were never written.
	ErrNotFound = errors.New("save not found")
)

const (
	formatVersion = "v1"
	headerPrefix  = "#initerse-save " + formatVersion + " session="
	sumPrefix     = "#sum "
	recordSep     = "\t"
)

// Source is anything that can list its machines in row order.
type Source interface {
	Each(fn func(c utils.Coord, m *tower.Machine))
}

// Snapshot is a decoded save.
type Snapshot struct {
	Session  uuid.UUID
	Machines map[utils.Coord]*tower.Machine
}

func record(c utils.Coord, m *tower.Machine) string {
	return strings.Join([]string{
		strconv.FormatInt(int64(c.X), 10),
		strconv.FormatInt(int64(c.Y), 10),
		m.Type().String(),
		tower.Encode(m),
	}, recordSep)
}

// Encode writes every machine of src as one record line between a session
// header and a checksum footer.
func Encode(w io.Writer, src Source, session uuid.UUID) error {
	bw := bufio.NewWriter(w)
	sum := xxhash.New()

	if _, err := fmt.Fprintf(bw, "%s%s\n", headerPrefix, session); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	var werr error
	src.Each(func(c utils.Coord, m *tower.Machine) {
		if werr != nil || m.IsEmpty() {
			return
		}
		line := record(c, m) + "\n"
		_, _ = sum.WriteString(line)
		_, werr = bw.WriteString(line)
	})
	if werr != nil {
		return fmt.Errorf("write record: %w", werr)
	}
	if _, err := fmt.Fprintf(bw, "%s%016x\n", sumPrefix, sum.Sum64()); err != nil {
		return fmt.Errorf("write checksum: %w", err)
	}
	return bw.Flush()
}

func malformed(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, line, fmt.Sprintf(format, args...))
}

func parseRecord(line string, n int) (utils.Coord, *tower.Machine, error) {
	parts := strings.SplitN(line, recordSep, 4)
	if len(parts) != 4 {
		return utils.Coord{}, nil, malformed(n, "want 4 fields, got %d", len(parts))
	}
	x, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil {
		return utils.Coord{}, nil, malformed(n, "bad x %q", parts[0])
	}
	y, err := strconv.ParseInt(parts[1], 10, 32)
	if err != nil {
		return utils.Coord{}, nil, malformed(n, "bad y %q", parts[1])
	}
	t, err := tower.ParseType(parts[2])
	if err != nil {
		return utils.Coord{}, nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, n, err)
	}
	if t == tower.Empty {
		return utils.Coord{}, nil, malformed(n, "Empty is never stored")
	}
	m, err := tower.Decode(t, parts[3])
	if err != nil {
		return utils.Coord{}, nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, n, err)
	}
	return utils.Coord{X: int32(x), Y: int32(y)}, m, nil
}

// Decode reads a whole save. It either returns every machine or an error;
// partial results are never handed out.
func Decode(r io.Reader) (Snapshot, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return Snapshot{}, fmt.Errorf("read header: %w", err)
		}
		return Snapshot{}, malformed(1, "empty save")
	}
	head := sc.Text()
	raw, ok := strings.CutPrefix(head, headerPrefix)
	if !ok {
		return Snapshot{}, malformed(1, "bad header %q", head)
	}
	session, err := uuid.Parse(raw)
	if err != nil {
		return Snapshot{}, malformed(1, "bad session id: %v", err)
	}

	snap := Snapshot{Session: session, Machines: make(map[utils.Coord]*tower.Machine)}
	sum := xxhash.New()
	n := 1
	var footer string
	for sc.Scan() {
		n++
		line := sc.Text()
		if footer != "" {
			if strings.TrimSpace(line) == "" {
				continue
			}
			return Snapshot{}, malformed(n, "data after checksum")
		}
		if strings.HasPrefix(line, sumPrefix) {
			footer = line
			continue
		}
		c, m, err := parseRecord(line, n)
		if err != nil {
			return Snapshot{}, err
		}
		if _, dup := snap.Machines[c]; dup {
			return Snapshot{}, malformed(n, "duplicate coordinate (%d, %d)", c.X, c.Y)
		}
		snap.Machines[c] = m
		_, _ = sum.WriteString(line + "\n")
	}
	if err := sc.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("read save: %w", err)
	}
	if footer == "" {
		return Snapshot{}, malformed(n, "missing checksum")
	}

	want, err := strconv.ParseUint(strings.TrimPrefix(footer, sumPrefix), 16, 64)
	if err != nil {
		return Snapshot{}, malformed(n, "bad checksum %q", footer)
	}
	if got := sum.Sum64(); got != want {
		return Snapshot{}, fmt.Errorf("%w: got %016x, want %016x", ErrChecksum, got, want)
	}
	return snap, nil
}
