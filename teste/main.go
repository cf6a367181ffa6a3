package main

import (
	"fmt"
	"time"

	"github.com/moisespsena-go/getset"
)

type Event struct {
	title   interface{}
	start   interface{}
	seats   interface{}
	created time.Time
}

func (e *Event) Title(value ...interface{}) (interface{}, error) {
	return getset.Must(getset.Access(e, "title")).OfType("string").GetOrSet(value...)
}

func (e *Event) Start(value ...interface{}) (interface{}, error) {
	return getset.Must(getset.Access(e, "start")).
		OfType("object").
		Initially(func() *time.Time {
			t := e.created.Add(24 * time.Hour)
			return &t
		}).
		GetOrSet(value...)
}

func (e *Event) Seats(value ...interface{}) (interface{}, error) {
	return getset.Must(getset.Access(e, "seats")).OfType("int").Initially(10).GetOrSet(value...)
}

func main() {
	e := &Event{created: time.Now()}

	fmt.Println(e.Title())
	fmt.Println(e.Title("Go meetup"))
	fmt.Println(e.Title())

	fmt.Println(e.Start())
	fmt.Println(e.Seats())
	fmt.Println(e.Seats(2.5))
	fmt.Println(e.Seats(25))
	fmt.Println(e.Seats())
	fmt.Println(e.Seats(0))
	fmt.Println(e.Seats())

	_, err := getset.Access(e, "location")
	fmt.Println(err)
}
