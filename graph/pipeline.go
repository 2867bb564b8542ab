package graph

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/clusty-go/clusty/internal/pool"
	"github.com/clusty-go/clusty/internal/telemetry"
	"github.com/clusty-go/clusty/queue"
)

// Stats summarizes one Load call.
type Stats struct {
	// TotalDistances is the number of input rows observed, including rows later
	// rejected by a filter or collapsed as a duplicate.
	TotalDistances int64
}

// chunkTask is one loader-produced unit of work: a portion id (for ordering) and the
// slice of a borrowed input buffer holding that portion's complete lines.
type chunkTask struct {
	buf       *pool.ByteBuffer
	data      []byte
	portionID int64
}

// portionResult is what a parser hands the mapper: the parsed edges for one portion,
// still keyed by portionID so the priority queue can restore input-row order.
type portionResult struct {
	edges     []rawEdge
	nRows     int64
	portionID int64
}

// mappedEdge is one edge after the mapper has resolved both endpoint tokens to local
// indices; this is what updaters apply to the adjacency.
type mappedEdge struct {
	i, j     int32
	distance float64
}

// mappedPortion is what the mapper broadcasts to every updater queue.
type mappedPortion struct {
	edges []mappedEdge
	nRows int64
}

// Load streams r (the body of an input distance table; the header line must already
// be consumed and passed separately to ParseHeader) through the loader pipeline
// described in the package doc, producing a finalized Adjacency and the Resolver
// that assigned every local index. numThreads is the total requested thread budget T;
// the parser and updater pools each get max(1, (T-2)/2) threads.
func Load(r io.Reader, h *Header, cfg LoaderConfig) (*Adjacency, Resolver, Stats, error) {
	numThreads := cfg.NumThreads
	if numThreads < 4 {
		numThreads = 4
	}

	numParsers := max(1, (numThreads-2)/2)
	numUpdaters := max(1, (numThreads-2)/2)

	var resolver Resolver
	if cfg.Named {
		resolver = NewNamedResolver(1 << 16)
	} else {
		resolver = NewNumberedResolver()
	}

	adj := &Adjacency{}

	ab := newAbort()

	freeBuffers := pool.NewLoaderBufferSet(numParsers)

	blocks := queue.NewQueue[chunkTask](freeBuffers.Count())
	results := queue.NewPriorityQueue[portionResult]()
	updaterQueues := make([]*queue.Queue[mappedPortion], numUpdaters)

	for i := range updaterQueues {
		updaterQueues[i] = queue.NewQueue[mappedPortion](2)
	}

	activeUpdaters := queue.NewSemaphore()

	// Four separate wait groups mark each pipeline stage's own completion: a stage
	// only closes the queue feeding the next stage once every one of its own
	// goroutines has finished, so no stage's Pop can block forever waiting on a
	// Close that a still-running peer stage hasn't issued yet.
	var loaderWG, parserWG, mapperWG, updaterWG sync.WaitGroup

	loaderWG.Add(1)

	go runLoader(r, freeBuffers, blocks, ab, &loaderWG)

	parserWG.Add(numParsers)

	for tid := 0; tid < numParsers; tid++ {
		go runParser(tid, h, cfg, freeBuffers, blocks, results, ab, &parserWG)
	}

	mapperWG.Add(1)

	go runMapper(resolver, adj, results, updaterQueues, activeUpdaters, ab, &mapperWG)

	var total int64

	updaterWG.Add(numUpdaters)

	for tid := 0; tid < numUpdaters; tid++ {
		go runUpdater(tid, numUpdaters, adj, updaterQueues[tid], activeUpdaters, &total, &updaterWG)
	}

	loaderWG.Wait()
	parserWG.Wait()
	results.Close()
	mapperWG.Wait()
	updaterWG.Wait()

	// every borrowed buffer has been handed back by now: either the parser that
	// consumed it or, on an aborted read, the loader itself.
	freeBuffers.Close()

	if err := ab.err(); err != nil {
		return nil, nil, Stats{}, err
	}

	adj.Finalize(numThreads)
	telemetry.Debug("load finalized", "objects", adj.NumObjects(), "edges", adj.NumEdges())

	return adj, resolver, Stats{TotalDistances: total}, nil
}

// abort lets any pipeline goroutine report a fatal error and have every other
// goroutine notice and stop, mirroring the reference implementation's exception
// propagating up to the main thread after all workers join.
type abort struct {
	mu  sync.Mutex
	e   error
	sig chan struct{}
}

func newAbort() *abort {
	return &abort{sig: make(chan struct{})}
}

func (a *abort) fail(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.e == nil {
		a.e = err
		close(a.sig)
	}
}

func (a *abort) err() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.e
}

func (a *abort) aborted() bool {
	select {
	case <-a.sig:
		return true
	default:
		return false
	}
}

func runLoader(r io.Reader, freeBuffers *pool.LoaderBufferSet, blocks *queue.Queue[chunkTask], ab *abort, wg *sync.WaitGroup) {
	defer wg.Done()
	defer blocks.Close()

	br := bufio.NewReaderSize(r, 1<<20)

	var carry []byte

	for portionID := int64(0); ; portionID++ {
		if ab.aborted() {
			return
		}

		buf := freeBuffers.Acquire()

		buf.SetLength(cap(buf.B))
		full := buf.B

		copy(full, carry)

		n, eof, err := fillBuffer(br, full[len(carry):])
		n += len(carry)

		if err != nil {
			freeBuffers.Release(buf)
			ab.fail(fmt.Errorf("graph: reading input: %w", err))

			return
		}

		data := full[:n]

		var tail []byte

		if !eof {
			cut := lastNewline(data)
			if cut < 0 {
				freeBuffers.Release(buf)
				ab.fail(fmt.Errorf("graph: input line longer than the %d-byte buffer", cap(buf.B)))

				return
			}

			tail = append([]byte(nil), data[cut:]...)
			data = data[:cut]
		}

		buf.SetLength(n)
		blocks.Push(chunkTask{buf: buf, data: data, portionID: portionID})

		carry = tail

		if eof {
			return
		}
	}
}

// fillBuffer reads from r until dst is full or the stream ends.
func fillBuffer(r io.Reader, dst []byte) (n int, eof bool, err error) {
	for n < len(dst) {
		m, rerr := r.Read(dst[n:])
		n += m

		if rerr != nil {
			if rerr == io.EOF {
				return n, true, nil
			}

			return n, false, rerr
		}

		if m == 0 {
			return n, true, nil
		}
	}

	return n, false, nil
}

// lastNewline returns the index right after the last newline sequence in data, or -1
// if data contains no newline at all.
func lastNewline(data []byte) int {
	for i := len(data) - 1; i >= 0; i-- {
		if isNewline(data[i]) {
			return i + 1
		}
	}

	return -1
}

func runParser(
	tid int,
	h *Header,
	cfg LoaderConfig,
	freeBuffers *pool.LoaderBufferSet,
	blocks *queue.Queue[chunkTask],
	results *queue.PriorityQueue[portionResult],
	ab *abort,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	for {
		task, ok := blocks.Pop()
		if !ok {
			return
		}

		if ab.aborted() {
			freeBuffers.Release(task.buf)
			results.Push(task.portionID, portionResult{portionID: task.portionID})

			continue
		}

		telemetry.Debug("parser pop", "tid", tid, "portion", task.portionID)

		// every row of the portion counts toward Stats.TotalDistances, accepted or not
		var nRows int64
		for rest := task.data; len(rest) > 0; {
			nRows++
			end := indexByteFunc(rest, isNewline)
			if end < 0 {
				break
			}
			for end < len(rest) && isNewline(rest[end]) {
				end++
			}
			rest = rest[end:]
		}

		edges, err := parseBlock(task.data, h, cfg.Transform, !cfg.Named, task.portionID*parseRowBudget)
		freeBuffers.Release(task.buf)

		if err != nil {
			ab.fail(err)
			results.Push(task.portionID, portionResult{portionID: task.portionID})

			continue
		}

		results.Push(task.portionID, portionResult{edges: edges, nRows: nRows, portionID: task.portionID})
	}
}

// parseRowBudget is an upper bound on rows per portion used only to keep a parse
// error's reported row index monotonically increasing across portions; it need not
// be exact since the error message's purpose is locating the offending row by eye.
const parseRowBudget = 1 << 40

func runMapper(
	resolver Resolver,
	adj *Adjacency,
	results *queue.PriorityQueue[portionResult],
	updaterQueues []*queue.Queue[mappedPortion],
	activeUpdaters *queue.Semaphore,
	ab *abort,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	defer func() {
		for _, q := range updaterQueues {
			q.Close()
		}
	}()

	for {
		res, ok := results.Pop()
		if !ok {
			return
		}

		if ab.aborted() {
			continue
		}

		resolved := make([]mappedEdge, 0, len(res.edges))

		for _, e := range res.edges {
			idA, okA := resolver.Resolve(e.tokenA)
			idB, okB := resolver.Resolve(e.tokenB)

			if !okA || !okB {
				continue
			}

			resolved = append(resolved, mappedEdge{i: idA, j: idB, distance: e.distance})
		}

		telemetry.Debug("mapper pop", "portion", res.portionID)

		// wait with extension until updaters finish the previous portion
		activeUpdaters.WaitForZero()
		adj.extend(resolver.NumIDs())

		activeUpdaters.IncN(len(updaterQueues))

		for _, q := range updaterQueues {
			q.Push(mappedPortion{edges: resolved, nRows: res.nRows})
		}
	}
}

func runUpdater(
	tid int,
	numUpdaters int,
	adj *Adjacency,
	q *queue.Queue[mappedPortion],
	activeUpdaters *queue.Semaphore,
	total *int64,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	for {
		res, ok := q.Pop()
		if !ok {
			return
		}

		for _, e := range res.edges {
			if e.i == e.j {
				continue
			}

			if int(e.i)%numUpdaters == tid {
				adj.appendEdge(e.i, e.j, e.distance)
			}

			if int(e.j)%numUpdaters == tid {
				adj.appendEdge(e.j, e.i, e.distance)
			}
		}

		// only one updater tallies the shared total; every updater observes every
		// portion's row count, so tallying in more than one would double-count it.
		if tid == 0 {
			*total += res.nRows
		}

		activeUpdaters.Dec()
	}
}
