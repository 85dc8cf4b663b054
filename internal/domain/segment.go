package domain

import (
	"errors"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Segment é um segmento de clientes com seu peso (quantidade, receita, etc.)
type Segment struct {
	Label  string
	Weight float64
}

// Segments mantém os segmentos na ordem em que aparecem no objeto JSON recebido.
// A ordem importa para o desempate do segmento dominante.
type Segments []Segment

// UnmarshalJSON decodifica um objeto {"label": peso} preservando a ordem das chaves.
// Chaves repetidas mantêm a primeira posição e o último peso.
func (s *Segments) UnmarshalJSON(data []byte) error {
	iter := json.BorrowIterator(data)
	defer json.ReturnIterator(iter)

	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		*s = nil
		return nil
	case jsoniter.ObjectValue:
	default:
		return errors.New("customer_segments deve ser um objeto")
	}

	segments := Segments{}
	positions := make(map[string]int)

	iter.ReadObjectCB(func(it *jsoniter.Iterator, label string) bool {
		if it.WhatIsNext() != jsoniter.NumberValue {
			it.ReportError("customer_segments", "o peso do segmento "+label+" deve ser numérico")
			return false
		}

		weight := it.ReadFloat64()
		if pos, ok := positions[label]; ok {
			segments[pos].Weight = weight
			return true
		}

		positions[label] = len(segments)
		segments = append(segments, Segment{Label: label, Weight: weight})
		return true
	})

	if iter.Error != nil && iter.Error != io.EOF {
		return iter.Error
	}

	*s = segments
	return nil
}

// MarshalJSON escreve os segmentos como objeto, na ordem original
func (s Segments) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, segment := range s {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(segment.Label)
		stream.WriteFloat64(segment.Weight)
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}

	return append([]byte(nil), stream.Buffer()...), nil
}
