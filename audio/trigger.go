package audio

// Trigger fans a discrete event out to its subscribers, in the order they
// connected.
type Trigger struct {
	conns []*Connection
}

func (t *Trigger) Connect(f func()) *Connection {
	c := &Connection{t, f}
	t.conns = append(t.conns, c)
	return c
}

func (t *Trigger) Fire() {
	for _, c := range t.conns {
		c.f()
	}
}

type Connection struct {
	t *Trigger
	f func()
}

func (c *Connection) Disconnect() {
	t := c.t
	for i, conn := range t.conns {
		if c == conn {
			t.conns = append(t.conns[:i:i], t.conns[i+1:]...)
			return
		}
	}
}
