package bbsolve

import (
	"math/rand"
	"sort"
	"time"

	"github.com/mluipersbeck/dapcstp/dinst"
	"github.com/mluipersbeck/dapcstp/dsol"
	"github.com/mluipersbeck/dapcstp/dualascent"
	"github.com/mluipersbeck/dapcstp/primal"
	"github.com/mluipersbeck/dapcstp/reduce"
)

// engine holds every piece of mutable state one Solve call threads
// through processRoots and the B&B loop: the incumbent, the open-node
// queues, branch priorities, and run statistics (§4.6 "BBTree state").
type engine struct {
	opts   Options
	limits Limits
	rng    *rand.Rand

	dasat   float64
	heureps float64

	orig   *dinst.Instance
	queues *openQueues
	prio   []int

	inc *dsol.Solution // incumbent, indexed against the shared working instance
	ub  float64

	incOrig *dsol.Solution // incumbent recovered onto orig

	pool []*dsol.Solution // guide pool fed to strengthenBounds

	bigMLb  float64
	crM     []float64
	bigMIdx map[int]int

	bestSingleNodeObj  float64
	bestSingleNodeNode int
	haveSingleNode     bool

	bestlb, rootlb, rootub float64
	tState                 TerminationCause

	nIter, nImprovements                int
	nRoots, nRootsProcessed             int

	deadline time.Time
	startedAt time.Time

	log []LogEntry
}

// Solve runs the full branch-and-bound search on inst (§4.6 "Solve") and
// returns the incumbent expressed on inst plus summary statistics.
func Solve(inst *dinst.Instance, opts Options, limits Limits) Result {
	e := newEngine(inst, opts, limits)
	work := inst.Clone()

	if opts.InitPrep {
		e.runPreprocess(work)
	}
	if limits.Cutup >= 0 && limits.Cutup < e.ub {
		e.ub = limits.Cutup
	}

	e.inc = dsol.NewSolution(work.N, work.M, 0)
	e.trackBestSingleNode(work)

	if opts.HeurRoots > 0 {
		e.initHeur(work)
	}

	e.setupBigM(work)
	e.processRoots(work)

	if e.tState == BBMemLimit || e.tState == BBTimeLimit {
		e.bestlb = e.queues.bestLb(e.ub)
		e.queues.drain()
		return e.buildResult()
	}

	e.rootlb = e.bigMLb
	if e.queues.len() > 0 && e.queues.min[0].Lb > e.rootlb {
		e.rootlb = e.queues.min[0].Lb
	} else if e.queues.len() == 0 && e.ub > e.rootlb {
		e.rootlb = e.ub
	}
	e.bestlb = e.rootlb
	e.rootub = e.ub

	for e.queues.len() > 0 {
		b := e.queues.popSelect()
		e.stepNode(b, e.queues)

		e.bestlb = e.queues.bestLb(e.ub)
		e.nIter++

		if e.nIter >= e.limits.NodeLim {
			e.tState = BBNodeLimit
			break
		}
		if e.nImprovements >= e.limits.SolLim {
			e.tState = BBSolLimit
			break
		}
		if !e.deadline.IsZero() && time.Now().After(e.deadline) {
			e.tState = BBTimeLimit
			break
		}
		if e.opts.MemLimit > 0 && e.memProbe() > e.opts.MemLimit {
			e.tState = BBMemLimit
			break
		}
		if e.queues.len() == 0 || e.queues.min[0].Lb >= e.ub-e.opts.Absgap {
			e.tState = BBOptimal
			break
		}
	}

	if e.tState == BBNone {
		e.tState = BBOptimal
	}
	if e.tState == BBOptimal {
		e.bestlb = e.ub
	} else {
		e.queues.drain()
	}

	if e.haveSingleNode && e.bestSingleNodeObj < e.ub {
		e.adoptBestSingleNode(work)
	}

	return e.buildResult()
}

func newEngine(inst *dinst.Instance, opts Options, limits Limits) *engine {
	if opts.MemProbe == nil {
		opts.MemProbe = DefaultMemProbe
	}
	now := time.Now()
	e := &engine{
		opts:      opts,
		limits:    limits,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		dasat:     resolvedDasat(opts.Dasat, opts.Precision, inst.IsInt),
		heureps:   resolvedHeureps(opts.Heureps, inst.IsInt),
		orig:      inst,
		queues:    newOpenQueues(opts.NodeSelect),
		prio:      make([]int, inst.N),
		ub:        dinst.Inf,
		startedAt: now,
	}
	if limits.TimeLim > 0 && limits.TimeLim < 1e17 {
		e.deadline = now.Add(time.Duration(limits.TimeLim * float64(time.Second)))
	}
	return e
}

func (e *engine) memProbe() float64 {
	return e.opts.MemProbe()
}

// runPreprocess wraps reduce.Preprocess with this engine's reduction
// toggles; cost-shifting always runs, matching the original cascade.
func (e *engine) runPreprocess(inst *dinst.Instance) {
	reduce.Preprocess(inst, reduce.Options{
		CostShift: true,
		D1:        e.opts.D1,
		D2:        e.opts.D2,
		MA:        e.opts.MA,
		MS:        e.opts.MS,
		SS:        e.opts.SS,
	}, false)
}

// candidateRoots lists every node eligible to be tried as a root
// (terminals, or every node on an asymmetric instance), sorted by
// revenue descending so the most promising roots are tried first (§4.6
// "processRoots").
func candidateRoots(inst *dinst.Instance) []int {
	var out []int
	for i := 0; i < inst.N; i++ {
		if inst.F0[i] {
			continue
		}
		if !inst.IsAsym && !inst.T[i] {
			continue
		}
		out = append(out, i)
	}
	sort.Slice(out, func(a, b int) bool {
		if inst.P[out[a]] != inst.P[out[b]] {
			return inst.P[out[a]] > inst.P[out[b]]
		}
		return out[a] < out[b]
	})
	return out
}

// bigMArcIndices reproduces the synthetic-arc index assignment
// CreateRootedBigMCopy uses internally, so a SemiBigM skip test can look
// up the reduced cost of the arc entering candidate k on the bigM copy
// without rebuilding it.
func bigMArcIndices(inst *dinst.Instance) map[int]int {
	out := make(map[int]int)
	ij := inst.M
	for i := 0; i < inst.N; i++ {
		if inst.F0[i] {
			continue
		}
		if !inst.IsAsym && !inst.T[i] {
			continue
		}
		out[i] = ij
		ij += 2
	}
	return out
}

// setupBigM builds the auxiliary bigM-rooted instance once, ahead of
// root enumeration, so SemiBigM can cheaply skip hopeless root
// candidates and BigM can seed a tighter rootlb floor (§3 "BigM copy").
func (e *engine) setupBigM(work *dinst.Instance) {
	if (!e.opts.BigM && !e.opts.SemiBigM) || work.R != dinst.NoRoot {
		return
	}
	copyInst := work.CreateRootedBigMCopy()
	lb, cr, _ := dualascent.Run(copyInst.R, copyInst, copyInst.C, dinst.Inf, false, e.opts.Absgap, nil)
	e.bigMLb = lb
	e.crM = cr
	e.bigMIdx = bigMArcIndices(work)
}

// processRoots enumerates candidate roots against the shared working
// instance, running a quick dual-ascent bound for each and spinning off
// a cloned BBNode for every candidate that survives the cutoff test
// (§4.6 "processRoots").
func (e *engine) processRoots(work *dinst.Instance) {
	var roots []int
	if work.R != dinst.NoRoot {
		roots = []int{work.R}
	} else {
		roots = candidateRoots(work)
	}
	e.nRoots = len(roots)

	for _, k := range roots {
		if e.opts.SemiBigM && work.R == dinst.NoRoot {
			if idx, ok := e.bigMIdx[k]; ok && e.bigMLb+e.crM[idx] >= e.ub-e.opts.Absgap {
				e.nRootsProcessed++
				continue
			}
		}

		origF1, origT := work.F1[k], work.T[k]
		work.F1[k] = true
		work.T[k] = true

		e.inc.RootSolution(k)
		lb, _, _ := dualascent.Run(k, work, work.C, e.ub, e.opts.DAEager, e.opts.Absgap, e.inc)

		if e.ub-lb > e.opts.Absgap {
			nodeInst := work.Clone()
			nodeInst.R = k
			b := newBBNode(nodeInst, 0, -1)
			b.Lb = lb
			e.queues.push(b)
		}

		if work.IsAsym {
			work.F1[k], work.T[k] = origF1, origT
		} else {
			e.fixTerm(work, k)
		}

		e.nRootsProcessed++

		if !e.deadline.IsZero() && time.Now().After(e.deadline) {
			e.tState = BBTimeLimit
			return
		}
		if e.opts.MemLimit > 0 && e.memProbe() > e.opts.MemLimit {
			e.tState = BBMemLimit
			return
		}
		if work.Offset >= e.ub {
			return
		}
	}
}

// fixTerm pushes every arc incident to k to +Inf and folds its revenue
// into Offset, preventing k (already tried as a root) from being
// re-selected as a second root on a later processRoots iteration,
// grounded on the reference solver's fixTerm.
func (e *engine) fixTerm(inst *dinst.Instance, k int) {
	for _, ij := range inst.Din[k] {
		if !inst.Fe0[ij] {
			inst.C[ij] = dinst.Inf
		}
	}
	for _, ij := range inst.Dout[k] {
		if !inst.Fe0[ij] {
			inst.C[ij] = dinst.Inf
		}
	}
	inst.Offset += inst.P[k]
	inst.P[k] = 0
}

// trackBestSingleNode records the best single-node revenue on an
// unrooted, not-yet-fixed instance, supplementing the search with the
// trivial single-node solution a full arborescence search can otherwise
// overlook (§7 "Supplemented Features": zero-fixed-in unrooted
// instances).
func (e *engine) trackBestSingleNode(work *dinst.Instance) {
	if work.R != dinst.NoRoot {
		return
	}
	for i := 0; i < work.N; i++ {
		if work.F1[i] {
			return
		}
	}
	best := -1
	for i := 0; i < work.N; i++ {
		if work.F0[i] {
			continue
		}
		if best == -1 || work.P[i] > work.P[best] {
			best = i
		}
	}
	if best == -1 {
		return
	}
	e.bestSingleNodeObj = work.Offset - work.P[best]
	e.bestSingleNodeNode = best
	e.haveSingleNode = true
}

func (e *engine) adoptBestSingleNode(work *dinst.Instance) {
	e.ub = e.bestSingleNodeObj
	sol := dsol.NewSolution(work.N, work.M, e.bestSingleNodeNode)
	sol.Nodes[e.bestSingleNodeNode] = true
	sol.Obj = e.bestSingleNodeObj
	partial := sol.Clone()
	partial.Partial = true
	e.incOrig = work.RecoverPartialSolution(partial, e.orig)
}

// initHeur seeds the incumbent before root enumeration begins by running
// the primal heuristic from a handful of the most promising roots
// (§4.6 "initHeur"), optionally following up with a short, time-boxed
// inner B&B from each seed to strengthen the incumbent further.
func (e *engine) initHeur(work *dinst.Instance) {
	var roots []int
	if work.R != dinst.NoRoot {
		roots = []int{work.R}
	} else {
		roots = candidateRoots(work)
	}
	n := e.opts.HeurRoots
	if n > len(roots) {
		n = len(roots)
	}

	var heurDeadline time.Time
	if e.opts.HeurBB {
		heurDeadline = time.Now().Add(time.Duration(e.opts.HeurBBTime * float64(time.Second)))
	}

	for idx := 0; idx < n; idx++ {
		k := roots[idx]
		seed := work.Clone()
		seed.F1[k] = true
		seed.T[k] = true
		seed.R = k
		e.runPreprocess(seed)

		lb, cr, _ := dualascent.Run(k, seed, seed.C, e.ub, e.opts.DAEager, e.opts.Absgap, nil)
		e.runPrimalHeuristic(seed, cr)

		if !e.opts.HeurBB || e.ub-lb <= e.opts.Absgap {
			continue
		}
		q := newOpenQueues(e.opts.NodeSelect)
		b := newBBNode(seed, 0, -1)
		b.Lb = lb
		q.push(b)

		iter := 0
		for q.len() > 0 && iter < 200 && time.Now().Before(heurDeadline) {
			nb := q.popSelect()
			e.stepNode(nb, q)
			iter++
		}
		q.drain()
	}
}

// stepNode runs one process/branch/evalLeaf cycle on b, pushing any
// children branch produces onto q. Every popped node is freshly
// reprocessed, including one mutated in place by a prior branch call:
// branch always resets Processed to false on the child it mutates in
// place, since fixing a variable changes the instance process must
// re-examine (§4.6 "the select/process/branch cycle").
func (e *engine) stepNode(b *BBNode, q *openQueues) {
	state := e.process(b)
	b.Processed = true
	b.State = state
	switch state {
	case StateInfeas, StateCutoff:
		if b.V != -1 {
			e.prio[b.V]++
		}
		b.Inst = nil
	case StateLeaf:
		e.evalLeaf(b)
		b.Inst = nil
	case StateBranch:
		e.branch(b, q)
		if !b.Feas {
			b.Inst = nil
		}
	}
}

// process runs the per-node pipeline of §4.6 "process(b)": preprocess,
// feasibility, dual ascent with cutoff, bound-based reduction,
// bound-strengthening, and the primal heuristic, returning the node's
// resulting state.
func (e *engine) process(b *BBNode) NodeState {
	inst := b.Inst

	if b.Depth == 0 || !e.opts.RedRootOnly {
		e.runPreprocess(inst)
	}

	if !isFeasible(inst, false) {
		return StateInfeas
	}

	lb, cr, pi := dualascent.Run(inst.R, inst, inst.C, e.ub, e.opts.DAEager, e.opts.Absgap, e.inc)
	if lb > b.Lb {
		b.Lb = lb
	}
	if e.ub-b.Lb <= e.opts.Absgap {
		return StateCutoff
	}

	if e.opts.LC {
		reduce.BBRed(inst, reduce.Bound{Lb: b.Lb, Cr: cr, Pi: pi, Ub: e.ub, Absgap: e.opts.Absgap})
		if !isFeasible(inst, e.opts.NR) {
			return StateInfeas
		}
	}

	cr, pi = e.strengthenBounds(b, inst, cr, pi)
	if e.ub-b.Lb <= e.opts.Absgap {
		return StateCutoff
	}

	e.runPrimalHeuristic(inst, cr)
	if e.ub-b.Lb <= e.opts.Absgap {
		return StateCutoff
	}

	b.Cr, b.Pi = cr, pi
	if countFree(inst) == 0 {
		return StateLeaf
	}
	return StateBranch
}

func countFree(inst *dinst.Instance) int {
	n := 0
	for i := 0; i < inst.N; i++ {
		if !inst.F0[i] && !inst.F1[i] {
			n++
		}
	}
	return n
}

// strengthenBounds runs up to DAIterations-1 further dual-ascent rounds
// guided by distinct pool solutions in shuffled order, reducing after
// each round and stopping early on cutoff (§4.6 "strengthenBounds").
func (e *engine) strengthenBounds(b *BBNode, inst *dinst.Instance, cr, pi []float64) ([]float64, []float64) {
	rounds := e.opts.DAIterations - 1
	if rounds <= 0 || len(e.pool) == 0 {
		return cr, pi
	}
	guides := e.shuffledPool()
	if rounds > len(guides) {
		rounds = len(guides)
	}
	for i := 0; i < rounds; i++ {
		lb2, cr2, pi2 := dualascent.Run(inst.R, inst, inst.C, e.ub, e.opts.DAEager, e.opts.Absgap, guides[i])
		if lb2 > b.Lb {
			b.Lb = lb2
			cr, pi = cr2, pi2
		}
		if e.opts.LC {
			reduce.BBRed(inst, reduce.Bound{Lb: b.Lb, Cr: cr, Pi: pi, Ub: e.ub, Absgap: e.opts.Absgap})
		}
		if e.ub-b.Lb <= e.opts.Absgap {
			break
		}
	}
	return cr, pi
}

func (e *engine) shuffledPool() []*dsol.Solution {
	out := append([]*dsol.Solution(nil), e.pool...)
	e.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// runPrimalHeuristic builds and installs one primal-heuristic candidate
// on inst, optionally restricted to the dual-ascent support graph and/or
// perturbed toward the incumbent (§4.5, §4.6 "the primal heuristic").
func (e *engine) runPrimalHeuristic(inst *dinst.Instance, cr []float64) {
	c := inst.C
	if e.opts.HeurSupportG {
		c = primal.SupportGraphCosts(inst, cr, e.dasat)
	}
	if e.opts.PerturbedHeur && e.inc != nil {
		c = primal.PerturbedCosts(c, e.inc.Arcs, e.heureps)
	}
	nodes, arcs, obj := primal.Construct(inst.R, inst, c)
	sol := &dsol.Solution{Nodes: nodes, Arcs: arcs, Root: inst.R, Obj: obj}
	e.updatePrimal(inst, sol)
}

// evalLeaf exactly evaluates a leaf node (no free variables remain) via
// the arborescence solver, installing the result as a candidate solution
// (§4.6 "evalLeaf").
func (e *engine) evalLeaf(b *BBNode) {
	inst := b.Inst
	arcs, _, ok := primal.DMST(inst.R, inst, b.Cr)
	if !ok {
		return
	}
	var cost float64
	for ij, in := range arcs {
		if in {
			cost += inst.C[ij]
		}
	}
	reached := inst.ReachableFrom(inst.R)
	var revenue float64
	for i := 0; i < inst.N; i++ {
		if reached[i] {
			revenue += inst.P[i]
		}
	}
	sol := &dsol.Solution{
		Nodes: reached,
		Arcs:  arcs,
		Root:  inst.R,
		Obj:   inst.Offset + cost - revenue,
	}
	e.updatePrimal(inst, sol)
}

// updatePrimal validates sol against inst and, if it strictly improves
// the incumbent, installs it: updates ub/inc, appends to the guide pool,
// and recovers it onto the original instance (§4.6 "updatePrimal", §7
// "Validation failure ... rejected silently").
func (e *engine) updatePrimal(inst *dinst.Instance, sol *dsol.Solution) {
	ok, obj := sol.Validate(inst)
	if !ok {
		return
	}
	sol.Obj = obj
	if obj >= e.ub-e.opts.Absgap {
		return
	}

	e.ub = obj
	e.inc = sol.Clone()
	e.nImprovements++
	e.pool = append(e.pool, sol.Clone())
	e.log = append(e.log, LogEntry{Obj: obj, FoundAt: time.Since(e.startedAt)})

	partial := sol.Clone()
	partial.Partial = true
	e.incOrig = inst.RecoverPartialSolution(partial, e.orig)
}

// testF0 cheaply tests whether fixing v out keeps inst feasible, without
// mutating the arc set (§4.6 "branch": f0/f1 feasibility probes).
func (e *engine) testF0(inst *dinst.Instance, v int) bool {
	if inst.T[v] || inst.F1[v] {
		return false
	}
	old := inst.F0[v]
	inst.F0[v] = true
	ok := isFeasible(inst, false)
	inst.F0[v] = old
	return ok
}

// testF1 cheaply tests whether fixing v in keeps inst feasible.
func (e *engine) testF1(inst *dinst.Instance, v int) bool {
	oldF1, oldT, oldP := inst.F1[v], inst.T[v], inst.P[v]
	inst.F1[v] = true
	inst.T[v] = true
	ok := isFeasible(inst, false)
	inst.F1[v], inst.T[v], inst.P[v] = oldF1, oldT, oldP
	return ok
}

// branch selects a branch variable and produces its 0, 1, or 2 children
// (§4.6 "branch"): both f0 and f1 feasible clones b into a fresh f0-child
// (pushed to q) and mutates b in place into the f1-child (re-pushed);
// only one feasible mutates b in place into that single child; neither
// feasible marks b infeasible and drops it.
func (e *engine) branch(b *BBNode, q *openQueues) {
	v := e.selectBranchVariable(b)
	if v == -1 {
		panic(ErrNoFreeNode)
	}

	feas0 := e.testF0(b.Inst, v)
	feas1 := e.testF1(b.Inst, v)

	switch {
	case feas0 && feas1:
		child := b.Inst.Clone()
		child.RemoveNode(v)
		b0 := newBBNode(child, b.Depth+1, v)
		b0.Lb = b.Lb
		q.push(b0)

		fixIn(b.Inst, v)
		b.Depth++
		b.V = v
		b.Processed = false
		q.push(b)
	case feas0:
		b.Inst.RemoveNode(v)
		b.Depth++
		b.V = v
		b.Processed = false
		q.push(b)
	case feas1:
		fixIn(b.Inst, v)
		b.Depth++
		b.V = v
		b.Processed = false
		q.push(b)
	default:
		b.Feas = false
	}
}

// fixIn marks v fixed-in, preserving it against any later reduction that
// only protects terminals (§4.4). v's revenue is left at its real,
// finite value rather than forced to infinity: primal.Construct and
// pruneNegativeLeaves treat any F1 node as unconditionally mandatory
// directly, so evalLeaf and Validate's revenue sums never need to
// subtract a sentinel back out.
func fixIn(inst *dinst.Instance, v int) {
	inst.F1[v] = true
	inst.T[v] = true
}

// selectBranchVariable picks the free node maximizing the §4.6
// branchtype-selected key: prio (times a node reached by branching on it
// was cut off or found infeasible), deg (incident arcs within the dual-ascent support
// threshold), and degS (incident arcs present in the incumbent),
// compared lexicographically per branchtype, lowest index breaking ties.
func (e *engine) selectBranchVariable(b *BBNode) int {
	inst := b.Inst
	best := -1
	var bestKey [3]int

	for i := 0; i < inst.N; i++ {
		if inst.F0[i] || inst.F1[i] {
			continue
		}
		deg, degS := incidentCounts(inst, b.Cr, e.inc, e.dasat, i)
		key := [3]int{e.prio[i], deg, degS}
		if best == -1 || branchKeyGreater(key, bestKey, e.opts.BranchType) {
			best, bestKey = i, key
		}
	}
	return best
}

func incidentCounts(inst *dinst.Instance, cr []float64, inc *dsol.Solution, dasat float64, i int) (deg, degS int) {
	count := func(arcs []int) {
		for _, ij := range arcs {
			if inst.Fe0[ij] {
				continue
			}
			if cr != nil && ij < len(cr) && cr[ij] <= dasat {
				deg++
			}
			if inc != nil && ij < len(inc.Arcs) && inc.Arcs[ij] {
				degS++
			}
		}
	}
	count(inst.Din[i])
	count(inst.Dout[i])
	return deg, degS
}

// branchKeyGreater compares two (prio, deg, degS) candidate keys
// according to branchtype's lexicographic field order (0: prio, deg,
// degS; 1: deg, degS; 2: deg only; 3: degS only).
func branchKeyGreater(a, b [3]int, branchType int) bool {
	switch branchType {
	case 0:
		return tupleGreater(a[:], b[:])
	case 1:
		return tupleGreater(a[1:], b[1:])
	case 2:
		return a[1] > b[1]
	default:
		return a[2] > b[2]
	}
}

func tupleGreater(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return false
}

func (e *engine) buildResult() Result {
	return Result{
		Solution:        e.incOrig,
		Bestlb:          e.bestlb,
		Rootlb:          e.rootlb,
		Rootub:          e.rootub,
		Cause:           e.tState,
		NRoots:          e.nRoots,
		NRootsProcessed: e.nRootsProcessed,
		NRootsOpen:      e.queues.len(),
		NImprovements:   e.nImprovements,
		NIter:           e.nIter,
		Log:             e.log,
	}
}
