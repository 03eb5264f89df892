package main

import (
	"fmt"
	"io"

	"github.com/brunobiangulo/cramdata/dataset"
)

type summary struct {
	Dataset    *datasetSummary  `json:"dataset,omitempty"`
	Categories *categorySummary `json:"categories,omitempty"`
}

type datasetSummary struct {
	Path    string `json:"path"`
	Records int    `json:"records"`

	// Records whose list is empty.
	NoDenseCtxs    int `json:"no_dense_ctxs"`
	NoRerankedCtxs int `json:"no_reranked_ctxs"`
	NoFakes        int `json:"no_fakes"`

	// Records whose score list length differs from the list it scores.
	FakeScoreMismatch     int `json:"fake_score_mismatch"`
	RerankedScoreMismatch int `json:"reranked_score_mismatch"`

	// Records with a score that does not parse as a number.
	NonNumericScores int `json:"non_numeric_scores"`
}

type categorySummary struct {
	Path   string   `json:"path"`
	Labels []string `json:"labels"`
}

func summarizeData(path string, records []dataset.Data) datasetSummary {
	s := datasetSummary{Path: path, Records: len(records)}
	for _, d := range records {
		if len(d.DenseCtxs()) == 0 {
			s.NoDenseCtxs++
		}
		reranked := d.RerankedDenseCtxs()
		if len(reranked) == 0 {
			s.NoRerankedCtxs++
		}
		fakes := d.OriFake()
		if len(fakes) == 0 {
			s.NoFakes++
		}
		if len(d.OriFakeTruthfulScores()) != len(fakes) {
			s.FakeScoreMismatch++
		}
		if len(d.RerankedDenseCtxsTruthfulScores()) != len(reranked) {
			s.RerankedScoreMismatch++
		}
		_, errFake := d.TruthfulScores()
		_, errReranked := d.RerankedTruthfulScores()
		if errFake != nil || errReranked != nil {
			s.NonNumericScores++
		}
	}
	return s
}

func summarizeCategories(path string, configs []dataset.CategoryConfig) categorySummary {
	s := categorySummary{Path: path, Labels: make([]string, 0, len(configs))}
	for _, c := range configs {
		s.Labels = append(s.Labels, c.Label())
	}
	return s
}

func (s summary) writeText(w io.Writer) {
	if d := s.Dataset; d != nil {
		fmt.Fprintf(w, "dataset %s\n", d.Path)
		fmt.Fprintf(w, "  records:                 %d\n", d.Records)
		fmt.Fprintf(w, "  without dense ctxs:      %d\n", d.NoDenseCtxs)
		fmt.Fprintf(w, "  without reranked ctxs:   %d\n", d.NoRerankedCtxs)
		fmt.Fprintf(w, "  without fakes:           %d\n", d.NoFakes)
		fmt.Fprintf(w, "  fake score mismatch:     %d\n", d.FakeScoreMismatch)
		fmt.Fprintf(w, "  reranked score mismatch: %d\n", d.RerankedScoreMismatch)
		fmt.Fprintf(w, "  non-numeric scores:      %d\n", d.NonNumericScores)
	}
	if c := s.Categories; c != nil {
		fmt.Fprintf(w, "categories %s (%d)\n", c.Path, len(c.Labels))
		for _, l := range c.Labels {
			fmt.Fprintf(w, "  - %s\n", l)
		}
	}
}
