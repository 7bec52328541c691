package wire

// A RecordWriter encodes the fields of one record in declaration order.
// After the first failing field, the remaining fields are skipped and Close
// reports the failure.
type RecordWriter struct {
	e    *Encoder
	name string
	err  error
}

// Record opens a record of type name. The caller must call Close.
func (e *Encoder) Record(name string) *RecordWriter {
	e.enter()
	return &RecordWriter{e: e, name: name}
}

// Put encodes field using fn.
func Put[T any](rec *RecordWriter, field string, v T, fn func(*Encoder, T) error) {
	if rec.err != nil {
		return
	}

	off := rec.e.Offset()
	if err := fn(rec.e, v); err != nil {
		rec.err = annotate(fault(err, rec.name, off), "."+field)
	}
}

// Close ends the record and returns the first field error.
func (rec *RecordWriter) Close() error {
	return rec.e.leave(rec.name, rec.err)
}

// A RecordReader decodes the fields of one record in declaration order.
// After the first failing field, the remaining fields are skipped and Close
// reports the failure; the caller must then discard the partially filled
// record.
type RecordReader struct {
	d       *Decoder
	name    string
	counted bool
	err     error
}

// Record opens a record of type name. The caller must call Close.
func (d *Decoder) Record(name string) *RecordReader {
	counted := !d.payload
	d.payload = false
	return &RecordReader{d: d, name: name, counted: counted, err: d.enter(name, counted)}
}

// Get decodes field using fn. It returns the zero value of T if this or an
// earlier field failed.
func Get[T any](rec *RecordReader, field string, fn func(*Decoder) (T, error)) T {
	var zero T
	if rec.err != nil {
		return zero
	}

	off := rec.d.Offset()
	v, err := fn(rec.d)
	if err != nil {
		rec.err = annotate(fault(err, rec.name, off), "."+field)
		return zero
	}
	return v
}

// Close ends the record and returns the first field error.
func (rec *RecordReader) Close() error {
	return rec.d.leave(rec.name, rec.counted, rec.err)
}
