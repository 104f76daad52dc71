// Package control turns pointer and key events into world commands.
//
// A [Controller] never mutates bodies. It only enqueues [sim.Command]
// values, so a frontend running input on its own goroutine stays
// race-free:
//
//	w, _ := sim.New(sim.DefaultConfig())
//	ctrl := control.New(w, control.DefaultKeyMap(), 30)
//	ctrl.PointerDown(x, y)
//	ctrl.PointerMove(x, y)
//	ctrl.PointerUp()
//	ctrl.Key("+")
package control
