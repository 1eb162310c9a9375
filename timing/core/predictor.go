package core

import "fmt"

// PredictorConfig holds configuration for the branch predictor.
type PredictorConfig struct {
	// BHTSize is the number of entries in the Branch History Table.
	// Must be a power of 2. Default is 1024.
	BHTSize uint32 `json:"bht_size" yaml:"bht_size"`
	// BTBSize is the number of entries in the Branch Target Buffer.
	// Must be a power of 2. Default is 256.
	BTBSize uint32 `json:"btb_size" yaml:"btb_size"`
}

// DefaultPredictorConfig returns a default configuration.
func DefaultPredictorConfig() PredictorConfig {
	return PredictorConfig{
		BHTSize: 1024,
		BTBSize: 256,
	}
}

// Validate checks that both tables are non-empty powers of two.
func (c PredictorConfig) Validate() error {
	for _, f := range []struct {
		name string
		size uint32
	}{{"BHT", c.BHTSize}, {"BTB", c.BTBSize}} {
		if f.size == 0 || f.size&(f.size-1) != 0 {
			return fmt.Errorf("%s size %d is not a power of two", f.name, f.size)
		}
	}
	return nil
}

// PredictorStats holds statistics for the branch predictor.
type PredictorStats struct {
	// Predictions is the total number of branches resolved.
	Predictions uint64
	// Correct is the number of branches whose direction and target were
	// both predicted.
	Correct uint64
	// Mispredictions is the number of incorrect predictions.
	Mispredictions uint64
	// BTBHits is the number of BTB hits.
	BTBHits uint64
	// BTBMisses is the number of BTB misses.
	BTBMisses uint64
}

// Accuracy returns the prediction accuracy as a percentage.
func (s PredictorStats) Accuracy() float64 {
	if s.Predictions == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Predictions) * 100
}

// Prediction represents a branch prediction result.
type Prediction struct {
	// Taken indicates whether the branch is predicted to be taken.
	Taken bool
	// Target is the predicted target address (if known from BTB).
	Target uint64
	// TargetKnown indicates whether the target address is known.
	TargetKnown bool
}

// Predictor implements a 2-bit saturating counter (bimodal) predictor
// with a Branch Target Buffer (BTB).
type Predictor struct {
	// 2-bit counters: 0 and 1 predict not taken, 2 and 3 taken.
	bht []uint8

	btb      []btbEntry
	btbValid []bool

	stats PredictorStats
}

type btbEntry struct {
	pc     uint64
	target uint64
}

// NewPredictor creates a branch predictor. It panics if config does not
// validate.
func NewPredictor(config PredictorConfig) *Predictor {
	if err := config.Validate(); err != nil {
		panic(err)
	}

	p := &Predictor{
		bht:      make([]uint8, config.BHTSize),
		btb:      make([]btbEntry, config.BTBSize),
		btbValid: make([]bool, config.BTBSize),
	}
	p.Reset()
	return p
}

// index drops the alignment bit shared by 2- and 4-byte instructions.
func index(pc uint64, size int) int {
	return int((pc >> 1) & uint64(size-1))
}

// Predict makes a branch prediction for the given PC.
func (p *Predictor) Predict(pc uint64) Prediction {
	pred := Prediction{Taken: p.bht[index(pc, len(p.bht))] >= 2}

	i := index(pc, len(p.btb))
	if p.btbValid[i] && p.btb[i].pc == pc {
		pred.Target = p.btb[i].target
		pred.TargetKnown = true
		p.stats.BTBHits++
	} else {
		p.stats.BTBMisses++
	}
	return pred
}

// Resolve predicts the branch at pc, trains the predictor with its actual
// outcome and reports whether the prediction was wrong. A taken branch is
// mispredicted unless the BTB held its target.
func (p *Predictor) Resolve(pc uint64, taken bool, target uint64) bool {
	pred := p.Predict(pc)
	p.stats.Predictions++

	wrong := pred.Taken != taken || (taken && (!pred.TargetKnown || pred.Target != target))
	if wrong {
		p.stats.Mispredictions++
	} else {
		p.stats.Correct++
	}

	i := index(pc, len(p.bht))
	switch {
	case taken && p.bht[i] < 3:
		p.bht[i]++
	case !taken && p.bht[i] > 0:
		p.bht[i]--
	}

	if taken {
		j := index(pc, len(p.btb))
		p.btb[j] = btbEntry{pc: pc, target: target}
		p.btbValid[j] = true
	}
	return wrong
}

// Stats returns the branch predictor statistics.
func (p *Predictor) Stats() PredictorStats {
	return p.stats
}

// Reset clears all predictor state and statistics. Counters start weakly
// taken.
func (p *Predictor) Reset() {
	for i := range p.bht {
		p.bht[i] = 2
	}
	clear(p.btbValid)
	p.stats = PredictorStats{}
}
