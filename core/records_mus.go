package core

import (
	"time"

	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for persisted domain types, composed from the mus-go
// primitive serializers. Field order is part of the storage format; do not
// reorder without a migration. Timestamps travel as Unix microseconds.
var (
	IDMUS       = idMUS{}
	DocumentMUS = documentMUS{}
	QAResultMUS = qaResultMUS{}
)

type idMUS struct{}

var _ mus.Serializer[ID] = idMUS{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

// timeMUS serializes a time.Time as Unix microseconds.
type timeMUS struct{}

var _ mus.Serializer[time.Time] = timeMUS{}

func (timeMUS) Marshal(t time.Time, bs []byte) int {
	return varint.Int64.Marshal(t.UnixMicro(), bs)
}

func (timeMUS) Unmarshal(bs []byte) (time.Time, int, error) {
	v, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(v).UTC(), n, nil
}

func (timeMUS) Size(t time.Time) int {
	return varint.Int64.Size(t.UnixMicro())
}

func (timeMUS) Skip(bs []byte) (int, error) {
	return varint.Int64.Skip(bs)
}

type documentMUS struct{}

var _ mus.Serializer[Document] = documentMUS{}

func (documentMUS) Marshal(d Document, bs []byte) (n int) {
	n = IDMUS.Marshal(d.Id, bs)
	n += ord.String.Marshal(d.Title, bs[n:])
	n += ord.String.Marshal(d.FullText, bs[n:])
	n += marshalStringSlice(d.Tags, bs[n:])
	n += timeMUS{}.Marshal(d.CreatedAt, bs[n:])
	n += timeMUS{}.Marshal(d.UpdatedAt, bs[n:])
	return n
}

func (documentMUS) Unmarshal(bs []byte) (d Document, n int, err error) {
	var n1 int
	d.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	d.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	d.FullText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	d.Tags, n1, err = unmarshalStringSlice(bs[n:])
	n += n1
	if err != nil {
		return
	}
	d.CreatedAt, n1, err = timeMUS{}.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	d.UpdatedAt, n1, err = timeMUS{}.Unmarshal(bs[n:])
	n += n1
	return
}

func (documentMUS) Size(d Document) (size int) {
	size = IDMUS.Size(d.Id)
	size += ord.String.Size(d.Title)
	size += ord.String.Size(d.FullText)
	size += sizeStringSlice(d.Tags)
	size += timeMUS{}.Size(d.CreatedAt)
	size += timeMUS{}.Size(d.UpdatedAt)
	return size
}

func (documentMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = IDMUS.Skip(bs); err != nil {
		return
	}
	for i := 0; i < 2; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	n1, err = skipStringSlice(bs[n:])
	n += n1
	if err != nil {
		return
	}
	for i := 0; i < 2; i++ {
		n1, err = timeMUS{}.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}

type qaResultMUS struct{}

var _ mus.Serializer[QAResult] = qaResultMUS{}

func (qaResultMUS) Marshal(r QAResult, bs []byte) (n int) {
	n = IDMUS.Marshal(r.Id, bs)
	n += ord.String.Marshal(r.Question, bs[n:])
	n += ord.String.Marshal(r.Answer, bs[n:])
	n += varint.Int.Marshal(len(r.DocumentIds), bs[n:])
	for _, id := range r.DocumentIds {
		n += IDMUS.Marshal(id, bs[n:])
	}
	n += timeMUS{}.Marshal(r.CreatedAt, bs[n:])
	return n
}

func (qaResultMUS) Unmarshal(bs []byte) (r QAResult, n int, err error) {
	var n1 int
	r.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	r.Question, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Answer, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var count int
	count, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if count > 0 {
		r.DocumentIds = make([]ID, count)
		for i := 0; i < count; i++ {
			r.DocumentIds[i], n1, err = IDMUS.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
		}
	}
	r.CreatedAt, n1, err = timeMUS{}.Unmarshal(bs[n:])
	n += n1
	return
}

func (qaResultMUS) Size(r QAResult) (size int) {
	size = IDMUS.Size(r.Id)
	size += ord.String.Size(r.Question)
	size += ord.String.Size(r.Answer)
	size += varint.Int.Size(len(r.DocumentIds))
	for _, id := range r.DocumentIds {
		size += IDMUS.Size(id)
	}
	size += timeMUS{}.Size(r.CreatedAt)
	return size
}

func (qaResultMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = IDMUS.Skip(bs); err != nil {
		return
	}
	for i := 0; i < 2; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	var count int
	count, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	for i := 0; i < count; i++ {
		n1, err = IDMUS.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	n1, err = timeMUS{}.Skip(bs[n:])
	n += n1
	return
}

func marshalStringSlice(items []string, bs []byte) (n int) {
	n = varint.Int.Marshal(len(items), bs)
	for _, item := range items {
		n += ord.String.Marshal(item, bs[n:])
	}
	return n
}

func unmarshalStringSlice(bs []byte) (items []string, n int, err error) {
	var count, n1 int
	count, n, err = varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	if count == 0 {
		return nil, n, nil
	}
	items = make([]string, count)
	for i := 0; i < count; i++ {
		items[i], n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}

func sizeStringSlice(items []string) (size int) {
	size = varint.Int.Size(len(items))
	for _, item := range items {
		size += ord.String.Size(item)
	}
	return size
}

func skipStringSlice(bs []byte) (n int, err error) {
	var count, n1 int
	count, n, err = varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	for i := 0; i < count; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}
