// Package worldfile exports generated worlds to compressed .wwz files and
// reads them back. A file is a zstd stream holding one JSON header line
// followed by a gob-encoded body.
package worldfile

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/wanderer/internal/world"
)

const (
	Format  = "wanderer-world"
	Version = 1
	Ext     = ".wwz"
)

// ErrFormat is returned for files that are not wanderer worlds or use an
// unsupported version.
var ErrFormat = errors.New("worldfile: unrecognised format")

// Header is readable without decoding the body.
type Header struct {
	Format    string         `json:"format"`
	Version   int            `json:"version"`
	Seed      int64          `json:"seed"`
	Size      int            `json:"size"`
	TileSize  float64        `json:"tile_size"`
	Resources int            `json:"resources"`
	Tiles     map[string]int `json:"tiles"`
}

type bodyV1 struct {
	Kinds     []uint8
	Heights   []float64
	Resources []resourceV1
}

type resourceV1 struct {
	ID   uint32
	X, Z int
	Kind uint8
}

// NewHeader describes w.
func NewHeader(w *world.World) Header {
	tiles := make(map[string]int, len(world.TileKinds))
	for k, n := range w.Terrain.CountByKind() {
		tiles[k.String()] = n
	}
	return Header{
		Format:    Format,
		Version:   Version,
		Seed:      w.Seed,
		Size:      w.Terrain.Size(),
		TileSize:  w.Terrain.TileSize(),
		Resources: w.Resources.Len(),
		Tiles:     tiles,
	}
}

// Encode writes w to out.
func Encode(out io.Writer, w *world.World) error {
	enc, err := zstd.NewWriter(out, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("worldfile: %w", err)
	}
	bw := bufio.NewWriterSize(enc, 64*1024)

	hb, err := json.Marshal(NewHeader(w))
	if err != nil {
		enc.Close()
		return fmt.Errorf("worldfile: encode header: %w", err)
	}
	hb = append(hb, '\n')
	if _, err := bw.Write(hb); err != nil {
		enc.Close()
		return fmt.Errorf("worldfile: write header: %w", err)
	}

	cells := w.Terrain.Cells()
	body := bodyV1{
		Kinds:     make([]uint8, len(cells)),
		Heights:   make([]float64, len(cells)),
		Resources: make([]resourceV1, 0, w.Resources.Len()),
	}
	for i, c := range cells {
		body.Kinds[i] = uint8(c.Kind)
		body.Heights[i] = c.Height
	}
	w.Resources.Each(func(r world.Resource) bool {
		body.Resources = append(body.Resources, resourceV1{ID: uint32(r.ID), X: r.X, Z: r.Z, Kind: uint8(r.Kind)})
		return true
	})
	if err := gob.NewEncoder(bw).Encode(&body); err != nil {
		enc.Close()
		return fmt.Errorf("worldfile: gob encode: %w", err)
	}

	if err := bw.Flush(); err != nil {
		enc.Close()
		return fmt.Errorf("worldfile: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("worldfile: %w", err)
	}
	return nil
}

// Decode reads a world written by Encode.
func Decode(in io.Reader) (*world.World, Header, error) {
	dec, err := zstd.NewReader(in)
	if err != nil {
		return nil, Header{}, fmt.Errorf("worldfile: %w", err)
	}
	defer dec.Close()
	br := bufio.NewReaderSize(dec, 64*1024)

	h, err := readHeader(br)
	if err != nil {
		return nil, h, err
	}

	var body bodyV1
	if err := gob.NewDecoder(br).Decode(&body); err != nil {
		return nil, h, fmt.Errorf("worldfile: gob decode: %w", err)
	}
	w, err := build(h, body)
	if err != nil {
		return nil, h, err
	}
	return w, h, nil
}

// DecodeHeader reads only the header line.
func DecodeHeader(in io.Reader) (Header, error) {
	dec, err := zstd.NewReader(in)
	if err != nil {
		return Header{}, fmt.Errorf("worldfile: %w", err)
	}
	defer dec.Close()
	return readHeader(bufio.NewReader(dec))
}

func readHeader(br *bufio.Reader) (Header, error) {
	var h Header
	line, err := br.ReadBytes('\n')
	if err != nil {
		return h, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if err := json.Unmarshal(line, &h); err != nil {
		return h, fmt.Errorf("%w: header: %v", ErrFormat, err)
	}
	if h.Format != Format {
		return h, fmt.Errorf("%w: format %q", ErrFormat, h.Format)
	}
	if h.Version != Version {
		return h, fmt.Errorf("%w: version %d", ErrFormat, h.Version)
	}
	return h, nil
}

func build(h Header, body bodyV1) (*world.World, error) {
	if len(body.Kinds) != len(body.Heights) {
		return nil, fmt.Errorf("worldfile: %d kinds but %d heights", len(body.Kinds), len(body.Heights))
	}
	cells := make([]world.Cell, len(body.Kinds))
	for i, k := range body.Kinds {
		if int(k) >= len(world.TileKinds) {
			return nil, fmt.Errorf("worldfile: cell %d has unknown tile kind %d", i, k)
		}
		cells[i] = world.Cell{Kind: world.TileKind(k), Height: body.Heights[i]}
	}
	terrain, err := world.FromCells(h.Size, h.TileSize, cells)
	if err != nil {
		return nil, fmt.Errorf("worldfile: %w", err)
	}

	resources := world.NewResourceList()
	occupied := make(map[[2]int]uint32, len(body.Resources))
	for _, r := range body.Resources {
		if int(r.Kind) >= len(world.ResourceKinds) {
			return nil, fmt.Errorf("worldfile: resource %d has unknown kind %d", r.ID, r.Kind)
		}
		if !terrain.InBounds(r.X, r.Z) {
			return nil, fmt.Errorf("worldfile: resource %d at (%d,%d) is off the map", r.ID, r.X, r.Z)
		}
		cell := [2]int{r.X, r.Z}
		if other, taken := occupied[cell]; taken {
			return nil, fmt.Errorf("worldfile: resources %d and %d share cell (%d,%d)", other, r.ID, r.X, r.Z)
		}
		occupied[cell] = r.ID
		res := world.Resource{ID: world.ResourceID(r.ID), X: r.X, Z: r.Z, Kind: world.ResourceKind(r.Kind)}
		if err := resources.Restore(res); err != nil {
			return nil, fmt.Errorf("worldfile: %w", err)
		}
	}
	if resources.Len() != h.Resources {
		return nil, fmt.Errorf("worldfile: header lists %d resources, body has %d", h.Resources, resources.Len())
	}
	return &world.World{Seed: h.Seed, Terrain: terrain, Resources: resources}, nil
}

// Save writes w to path, creating parent directories.
func Save(path string, w *world.World) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("worldfile: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("worldfile: %w", err)
	}
	if err := Encode(f, w); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("worldfile: %w", err)
	}
	return nil
}

// Load reads the world stored at path.
func Load(path string) (*world.World, Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Header{}, fmt.Errorf("worldfile: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
