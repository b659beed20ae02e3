// Package stats is the network fabric's counterpart to kcptun's SNMP
// dashboard: instead of per-connection traffic counters, it keeps running
// totals of the RMA calls and bytes a Fabric has issued to remote PEs so an
// operator can tell a slow reduction from a slow network.
package stats

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

// Counters is a lock-free set of running totals, safe for concurrent
// updates from every goroutine issuing an outgoing RMA call.
type Counters struct {
	Gets      int64
	Puts      int64
	Atomics   int64
	BytesSent int64
	BytesRecv int64
}

// New returns a zeroed Counters.
func New() *Counters { return &Counters{} }

func (c *Counters) AddGet(n int)  { atomic.AddInt64(&c.Gets, 1); atomic.AddInt64(&c.BytesRecv, int64(n)) }
func (c *Counters) AddPut(n int)  { atomic.AddInt64(&c.Puts, 1); atomic.AddInt64(&c.BytesSent, int64(n)) }
func (c *Counters) AddAtomic()    { atomic.AddInt64(&c.Atomics, 1) }

// Header names the columns ToSlice reports, in order.
func (c *Counters) Header() []string {
	return []string{"Gets", "Puts", "Atomics", "BytesSent", "BytesRecv"}
}

// ToSlice snapshots the counters as strings, matching Header's column order.
func (c *Counters) ToSlice() []string {
	return []string{
		fmt.Sprint(atomic.LoadInt64(&c.Gets)),
		fmt.Sprint(atomic.LoadInt64(&c.Puts)),
		fmt.Sprint(atomic.LoadInt64(&c.Atomics)),
		fmt.Sprint(atomic.LoadInt64(&c.BytesSent)),
		fmt.Sprint(atomic.LoadInt64(&c.BytesRecv)),
	}
}

// LogPeriodic appends a CSV row to path every interval seconds until stop
// is closed. path's filename portion is passed through time.Format, so a
// pattern like "fabric-20060102.csv" rolls over to a new file each day.
func LogPeriodic(path string, interval int, c *Counters, stop <-chan struct{}) {
	if path == "" || interval <= 0 {
		return
	}
	ticker := time.NewTicker(time.Duration(interval) * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			logOnce(path, c)
		}
	}
}

func logOnce(path string, c *Counters) {
	dir, file := filepath.Split(path)
	f, err := os.OpenFile(dir+time.Now().Format(file), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if stat, err := f.Stat(); err == nil && stat.Size() == 0 {
		w.Write(append([]string{"Unix"}, c.Header()...))
	}
	w.Write(append([]string{fmt.Sprint(time.Now().Unix())}, c.ToSlice()...))
	w.Flush()
}
