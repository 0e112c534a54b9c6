package generator

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"pkg.jsn.cam/ricochet/pkg/ricochet"
)

func TestBulletGenerator(t *testing.T) {
	g := &BulletGenerator{}
	g.Init(ricochet.NewRand(1))

	records := g.Generate(g.DefaultCount(), nil)
	bullets, ok := records.(ricochet.Bullets)
	if !ok {
		t.Fatalf("Generate returned %T, want ricochet.Bullets", records)
	}
	if len(bullets) != 10 {
		t.Fatalf("Got %d bullets, want 10", len(bullets))
	}

	// Draw a larger sample to exercise the bounds properly.
	for i, b := range g.Generate(5000, nil).(ricochet.Bullets) {
		if !b.InRange() {
			t.Fatalf("Bullet %d out of range: %+v", i, b)
		}
	}
}

func TestWallGenerator(t *testing.T) {
	g := &WallGenerator{}
	g.Init(ricochet.NewRand(1))

	ticks := 0
	walls, ok := g.Generate(g.DefaultCount(), func() { ticks++ }).(ricochet.Walls)
	if !ok {
		t.Fatal("Generate should return ricochet.Walls")
	}
	if len(walls) != 10_000 {
		t.Fatalf("Got %d walls, want 10000", len(walls))
	}
	if ticks != len(walls) {
		t.Errorf("tick called %d times, want %d", ticks, len(walls))
	}
	for i, w := range walls {
		if !w.InRange() {
			t.Fatalf("Wall %d out of range: %+v", i, w)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, name := range List() {
		t.Run(name, func(t *testing.T) {
			a, _ := Get(name)
			b, _ := Get(name)
			a.Init(ricochet.NewRand(0))
			b.Init(ricochet.NewRand(0))

			first := a.Generate(a.DefaultCount(), nil)
			second := b.Generate(b.DefaultCount(), nil)
			if !reflect.DeepEqual(first, second) {
				t.Error("Same seed should produce identical records")
			}

			c, _ := Get(name)
			c.Init(ricochet.NewRand(1))
			if reflect.DeepEqual(first, c.Generate(c.DefaultCount(), nil)) {
				t.Error("Different seeds should produce different records")
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	if got := List(); !reflect.DeepEqual(got, []string{"bullets", "walls"}) {
		t.Errorf("List() = %v", got)
	}

	tests := []struct {
		name   string
		output string
		count  int
	}{
		{"bullets", "bullets.json", 10},
		{"walls", "walls.json", 10_000},
	}
	for _, tt := range tests {
		g, err := Get(tt.name)
		if err != nil {
			t.Fatalf("Get(%s) failed: %v", tt.name, err)
		}
		if g.DefaultOutput() != tt.output {
			t.Errorf("%s: DefaultOutput = %s, want %s", tt.name, g.DefaultOutput(), tt.output)
		}
		if g.DefaultCount() != tt.count {
			t.Errorf("%s: DefaultCount = %d, want %d", tt.name, g.DefaultCount(), tt.count)
		}
		if g.Description() == "" {
			t.Errorf("%s: empty description", tt.name)
		}
	}

	if _, err := Get("lasers"); !errors.Is(err, ricochet.ErrUnknownGenerator) {
		t.Errorf("Expected ErrUnknownGenerator, got %v", err)
	}
}

func TestProduce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walls.json")

	result, err := Produce(&WallGenerator{}, ricochet.NewRand(7), ricochet.WallCount, path, nil)
	if err != nil {
		t.Fatalf("Produce failed: %v", err)
	}
	if result.Records.Len() != ricochet.WallCount {
		t.Errorf("Got %d records, want %d", result.Records.Len(), ricochet.WallCount)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if int64(len(data)) != result.Bytes {
		t.Errorf("Result.Bytes = %d, file has %d", result.Bytes, len(data))
	}

	var generic []map[string]map[string]int
	if err := json.Unmarshal(data, &generic); err != nil {
		t.Fatalf("Output is not a JSON array of objects: %v", err)
	}
	if len(generic) != ricochet.WallCount {
		t.Fatalf("Got %d entries, want %d", len(generic), ricochet.WallCount)
	}
	for _, key := range []string{"start", "end"} {
		p, ok := generic[0][key]
		if !ok || len(p) != 2 {
			t.Errorf("Entry 0 key %q = %v, want an {x,y} object", key, p)
		}
	}
}
