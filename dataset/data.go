package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
)

// Data record keys. SpacedWrongAnswerKey is the key the producer writes;
// it is re-keyed to KeyWrongAnswer before the record is built.
const (
	KeyID                      = "id"
	KeyQuestion                = "question"
	KeyReference               = "reference"
	KeyDenseCtxs               = "dense_ctxs"
	KeyRerankedDenseCtxs       = "reranked_dense_ctxs"
	KeyWrongAnswer             = "wrong_answer"
	KeyOriFake                 = "ori_fake"
	KeyOriFakeScores           = "ori_fake_truthful_scores"
	KeyRerankedDenseCtxsScores = "reranked_dense_ctxs_truthful_scores"
	SpacedWrongAnswerKey       = "wrong answer"
)

// dataKeys lists the fields of Data in declaration order.
var dataKeys = []string{
	KeyID,
	KeyQuestion,
	KeyReference,
	KeyDenseCtxs,
	KeyRerankedDenseCtxs,
	KeyWrongAnswer,
	KeyOriFake,
	KeyOriFakeScores,
	KeyRerankedDenseCtxsScores,
}

// Data is one question of the dataset with its retrieved contexts, the
// injected fake passages and their truthfulness scores.
type Data struct {
	id                              int64
	question                        string
	reference                       string
	denseCtxs                       []string
	rerankedDenseCtxs               []string
	wrongAnswer                     string
	oriFake                         []string
	oriFakeTruthfulScores           []string
	rerankedDenseCtxsTruthfulScores []string
}

// DataFromMap builds a Data record from one decoded JSON object.
//
// The producer spells the wrong answer key "wrong answer"; it is moved to
// "wrong_answer" first, so an object without it fails on that key before
// anything else is checked. After the rename the key set must match the
// nine fields exactly. m is not modified.
func DataFromMap(m map[string]json.RawMessage) (Data, error) {
	wrong, ok := m[SpacedWrongAnswerKey]
	if !ok {
		return Data{}, &KeyError{Record: "Data", Key: SpacedWrongAnswerKey, Err: ErrMissingKey}
	}
	if _, dup := m[KeyWrongAnswer]; dup {
		return Data{}, &KeyError{Record: "Data", Key: KeyWrongAnswer, Err: ErrUnexpectedKey}
	}

	fields := make(map[string]json.RawMessage, len(m))
	for k, v := range m {
		if k == SpacedWrongAnswerKey {
			continue
		}
		fields[k] = v
	}
	fields[KeyWrongAnswer] = wrong

	for _, k := range dataKeys {
		if _, ok := fields[k]; !ok {
			return Data{}, &KeyError{Record: "Data", Key: k, Err: ErrMissingKey}
		}
	}
	if len(fields) != len(dataKeys) {
		for _, k := range sortedKeys(fields) {
			if !slices.Contains(dataKeys, k) {
				return Data{}, &KeyError{Record: "Data", Key: k, Err: ErrUnexpectedKey}
			}
		}
	}

	var d Data
	targets := []struct {
		key string
		dst any
	}{
		{KeyID, &d.id},
		{KeyQuestion, &d.question},
		{KeyReference, &d.reference},
		{KeyDenseCtxs, &d.denseCtxs},
		{KeyRerankedDenseCtxs, &d.rerankedDenseCtxs},
		{KeyWrongAnswer, &d.wrongAnswer},
		{KeyOriFake, &d.oriFake},
	}
	for _, t := range targets {
		if err := json.Unmarshal(fields[t.key], t.dst); err != nil {
			return Data{}, &KeyError{Record: "Data", Key: t.key, Err: ErrFieldType, Detail: err.Error()}
		}
	}

	var err error
	if d.oriFakeTruthfulScores, err = decodeScores(KeyOriFakeScores, fields[KeyOriFakeScores]); err != nil {
		return Data{}, err
	}
	if d.rerankedDenseCtxsTruthfulScores, err = decodeScores(KeyRerankedDenseCtxsScores, fields[KeyRerankedDenseCtxsScores]); err != nil {
		return Data{}, err
	}

	return d, nil
}

// decodeScores reads a list whose elements are JSON strings or JSON
// numbers, keeping each as text.
func decodeScores(key string, raw json.RawMessage) ([]string, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, &KeyError{Record: "Data", Key: key, Err: ErrFieldType, Detail: err.Error()}
	}
	if elems == nil {
		return nil, nil
	}

	scores := make([]string, 0, len(elems))
	for i, e := range elems {
		e = bytes.TrimSpace(e)
		if len(e) > 0 && e[0] == '"' {
			var s string
			if err := json.Unmarshal(e, &s); err != nil {
				return nil, &KeyError{Record: "Data", Key: key, Err: ErrFieldType, Detail: err.Error()}
			}
			scores = append(scores, s)
			continue
		}
		var n json.Number
		if err := json.Unmarshal(e, &n); err != nil || n == "" {
			return nil, &KeyError{
				Record: "Data",
				Key:    key,
				Err:    ErrFieldType,
				Detail: fmt.Sprintf("element %d: want string or number, got %s", i, e),
			}
		}
		scores = append(scores, n.String())
	}
	return scores, nil
}

func (d Data) ID() int64 { return d.id }
func (d Data) Question() string { return d.question }
func (d Data) Reference() string { return d.reference }
func (d Data) WrongAnswer() string { return d.wrongAnswer }
func (d Data) DenseCtxs() []string { return slices.Clone(d.denseCtxs) }
func (d Data) OriFake() []string { return slices.Clone(d.oriFake) }

func (d Data) RerankedDenseCtxs() []string { return slices.Clone(d.rerankedDenseCtxs) }

// OriFakeTruthfulScores returns the scores of the fake passages as stored.
func (d Data) OriFakeTruthfulScores() []string { return slices.Clone(d.oriFakeTruthfulScores) }

// RerankedDenseCtxsTruthfulScores returns the scores of the reranked
// contexts as stored.
func (d Data) RerankedDenseCtxsTruthfulScores() []string {
	return slices.Clone(d.rerankedDenseCtxsTruthfulScores)
}

// TruthfulScores parses OriFakeTruthfulScores as floats.
func (d Data) TruthfulScores() ([]float64, error) {
	return parseScores(KeyOriFakeScores, d.oriFakeTruthfulScores)
}

// RerankedTruthfulScores parses RerankedDenseCtxsTruthfulScores as floats.
func (d Data) RerankedTruthfulScores() ([]float64, error) {
	return parseScores(KeyRerankedDenseCtxsScores, d.rerankedDenseCtxsTruthfulScores)
}

func parseScores(key string, scores []string) ([]float64, error) {
	out := make([]float64, len(scores))
	for i, s := range scores {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, &KeyError{
				Record: "Data",
				Key:    key,
				Err:    ErrFieldType,
				Detail: fmt.Sprintf("element %d: %v", i, err),
			}
		}
		out[i] = f
	}
	return out, nil
}

// Equal reports whether every field of d and other is equal. A nil and an
// empty list compare equal.
func (d Data) Equal(other Data) bool {
	return d.id == other.id &&
		d.question == other.question &&
		d.reference == other.reference &&
		d.wrongAnswer == other.wrongAnswer &&
		slices.Equal(d.denseCtxs, other.denseCtxs) &&
		slices.Equal(d.rerankedDenseCtxs, other.rerankedDenseCtxs) &&
		slices.Equal(d.oriFake, other.oriFake) &&
		slices.Equal(d.oriFakeTruthfulScores, other.oriFakeTruthfulScores) &&
		slices.Equal(d.rerankedDenseCtxsTruthfulScores, other.rerankedDenseCtxsTruthfulScores)
}

// String renders the record as <Article {id}>. Records carry no title.
func (d Data) String() string {
	return fmt.Sprintf("<Article %d>", d.id)
}
