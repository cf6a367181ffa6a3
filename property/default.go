package property

import "github.com/moisespsena-go/getset/funcs"

// defaultSource is either a literal value or a producer whose first
// successful result is memoized.
type defaultSource struct {
	literal  interface{}
	producer *funcs.Producer
	resolved bool
	value    interface{}
}

func (d *defaultSource) resolve() (interface{}, error) {
	if d.producer == nil {
		return d.literal, nil
	}
	if !d.resolved {
		v, err := d.producer.Call()
		if err != nil {
			return nil, err
		}
		d.value, d.resolved = v, true
	}
	return d.value, nil
}
