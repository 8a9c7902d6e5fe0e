package traintracks

import "github.com/coreman2200/funtimes-strandfx/model"

type carID int

const noCar carID = -1

type car struct {
	position   float64 // leading LED
	color      model.ColorVal
	towardHead carID
	towardTail carID
}

// formation is a doubly linked chain of cars stored in an arena. Released
// ids are reused by later cars.
type formation struct {
	cars  []car
	free  []carID
	head  carID
	tail  carID
	count int
}

func newFormation() formation {
	return formation{head: noCar, tail: noCar}
}

func (f *formation) get(id carID) *car { return &f.cars[id] }

func (f *formation) alloc(c car) carID {
	if n := len(f.free); n > 0 {
		id := f.free[n-1]
		f.free = f.free[:n-1]
		f.cars[id] = c
		return id
	}
	f.cars = append(f.cars, c)
	return carID(len(f.cars) - 1)
}

func (f *formation) release(id carID) {
	f.cars[id] = car{towardHead: noCar, towardTail: noCar}
	f.free = append(f.free, id)
}

// start seeds the formation with a single car.
func (f *formation) start(position float64, color model.ColorVal) {
	id := f.alloc(car{position: position, color: color, towardHead: noCar, towardTail: noCar})
	f.head, f.tail, f.count = id, id, 1
}

func (f *formation) pushHead(position float64, color model.ColorVal) {
	id := f.alloc(car{position: position, color: color, towardHead: noCar, towardTail: f.head})
	f.get(f.head).towardHead = id
	f.head = id
	f.count++
}

func (f *formation) pushTail(position float64, color model.ColorVal) {
	id := f.alloc(car{position: position, color: color, towardHead: f.tail, towardTail: noCar})
	f.get(f.tail).towardTail = id
	f.tail = id
	f.count++
}

// popHead removes the head car. The last car is never removed.
func (f *formation) popHead() {
	if f.count <= 1 {
		return
	}
	old := f.head
	f.head = f.get(old).towardTail
	f.get(f.head).towardHead = noCar
	f.release(old)
	f.count--
}

func (f *formation) popTail() {
	if f.count <= 1 {
		return
	}
	old := f.tail
	f.tail = f.get(old).towardHead
	f.get(f.tail).towardTail = noCar
	f.release(old)
	f.count--
}

// each visits cars from head to tail.
func (f *formation) each(fn func(c *car)) {
	for id := f.head; id != noCar; id = f.get(id).towardTail {
		fn(f.get(id))
	}
}

func (f *formation) clear() {
	*f = formation{cars: f.cars[:0], free: f.free[:0], head: noCar, tail: noCar}
}
