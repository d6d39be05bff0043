package events

import (
	"context"
	"expvar"

	"github.com/rs/zerolog/log"
)

var (
	metricEventsQueued  = expvar.NewInt("play_events_queued_total")
	metricEventsWritten = expvar.NewInt("play_events_written_total")
	metricEventsFailed  = expvar.NewInt("play_events_failed_total")
	metricEventsDropped = expvar.NewInt("play_events_dropped_total")
	metricEventQueueLen = expvar.NewInt("play_events_queue_len")
)

// Recorder hands events to a single background worker over a bounded
// channel. Record never blocks: when the buffer is full the event is
// dropped and counted. Write failures are logged and the event is gone;
// there is no retry.
type Recorder struct {
	writer Writer
	ch     chan Event
	done   chan struct{}
}

func NewRecorder(w Writer, buffer int) *Recorder {
	if buffer <= 0 {
		buffer = 256
	}
	return &Recorder{
		writer: w,
		ch:     make(chan Event, buffer),
		done:   make(chan struct{}),
	}
}

func (r *Recorder) Start(ctx context.Context) {
	go r.worker(ctx)
}

func (r *Recorder) Record(ev Event) {
	select {
	case r.ch <- ev:
		metricEventsQueued.Add(1)
		metricEventQueueLen.Set(int64(len(r.ch)))
	default:
		metricEventsDropped.Add(1)
		log.Warn().Str("play_id", ev.PlayID).Msg("event queue full, dropping play event")
	}
}

// Stop lets the worker drain what is already queued, then waits for it
// to exit. Record must not be called after Stop.
func (r *Recorder) Stop() {
	close(r.ch)
	<-r.done
}

func (r *Recorder) worker(ctx context.Context) {
	defer close(r.done)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-r.ch:
			if !ok {
				return
			}
			metricEventQueueLen.Set(int64(len(r.ch)))
			if err := r.writer.Write(ctx, ev); err != nil {
				metricEventsFailed.Add(1)
				log.Warn().Err(err).Str("play_id", ev.PlayID).Msg("play event write failed")
				continue
			}
			metricEventsWritten.Add(1)
		}
	}
}
