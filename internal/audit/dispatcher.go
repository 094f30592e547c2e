package audit

import "log"

type Event struct {
	Action   string
	Entity   string
	Ref      string
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

// NewDispatcher acepta logger nil: en ese caso los eventos solo se
// escriben al log del proceso (deploy sin base de datos).
func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if d.logger == nil {
			log.Printf("audit: %s %s ref=%s", ev.Action, ev.Entity, ev.Ref)
			continue
		}

		if err := d.logger.Log(
			ev.Action,
			ev.Entity,
			ev.Ref,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila llena → descartamos el evento (nunca frenar la API)
		log.Println("audit queue full, dropping event")
	}
}
