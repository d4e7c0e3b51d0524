package core

// changeRecorder captures the raw event sequence of an insertion-producing
// command (i I a A o O C) from the entry key until insert mode exits, and
// keeps the last completed sequence for the repeat command. Replay feeds
// the stored events back through the dispatcher with a guard so the replay
// does not record itself.
type changeRecorder struct {
	recording  bool
	replaying  bool
	keys       []KeyEvent
	lastChange []KeyEvent
}

// start begins a new recording with the entry key as its first event. It
// is a no-op mid-replay or when a recording is already running.
func (r *changeRecorder) start(entry KeyEvent) {
	if r.replaying || r.recording {
		return
	}
	r.recording = true
	r.keys = []KeyEvent{entry}
}

// record appends an event to the running recording.
func (r *changeRecorder) record(key KeyEvent) {
	if !r.recording || r.replaying {
		return
	}
	r.keys = append(r.keys, key)
}

// stop commits the running recording, replacing the previous generation.
func (r *changeRecorder) stop() {
	if !r.recording {
		return
	}
	r.recording = false
	r.lastChange = r.keys
	r.keys = nil
}

// last returns the most recently committed sequence, nil when no
// insertion-producing command has completed yet.
func (r *changeRecorder) last() []KeyEvent {
	return r.lastChange
}
