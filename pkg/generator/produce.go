package generator

import (
	"math/rand/v2"

	"pkg.jsn.cam/ricochet/pkg/ricochet"
)

// Result describes one completed generate → serialize → write pass.
type Result struct {
	Records Records
	Output  string
	Bytes   int64
}

// Produce seeds g with r, generates count records and writes them to path.
func Produce(g Generator, r *rand.Rand, count int, path string, tick func()) (Result, error) {
	g.Init(r)
	records := g.Generate(count, tick)

	n, err := ricochet.WriteJSON(path, records)
	if err != nil {
		return Result{}, err
	}

	return Result{Records: records, Output: path, Bytes: n}, nil
}
