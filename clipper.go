//===============================================================================
//                                                                              //
// Author    :  Angus Johnson                                                   //
// Version   :  10.0                                                            //
// Website   :  http://www.angusj.com                                           //
// Copyright :  Angus Johnson 2010-2017                                         //
//                                                                              //
// License:                                                                     //
// Use, modification & distribution is subject to Boost Software License Ver 1. //
// http://www.boost.org/LICENSE_1_0.txt                                         //
//                                                                              //
// Attributions:                                                                //
// The code in this library is an extension of Bala Vatti's clipping algorithm: //
// "A generic solution to polygon clipping"                                     //
// Communications of the ACM, Vol 35, Issue 7 (July 1992) PP 56-63.             //
// http://portal.acm.org/citation.cfm?id=129906                                 //
//                                                                              //
//===============================================================================

// Package clipper performs polygon clipping: Intersection, Union,
// Difference and Xor of closed paths, plus clipping of open paths
// against closed ones. Coordinates are integers on a grid with an
// inverted Y axis (y values increase downward). The implementation is
// a sweep-line extension of Bala Vatti's clipping algorithm.
package clipper

import (
	"container/heap"
	"math"
	"sort"
)

// A horizontal edge has no usable reciprocal slope, so dx carries a
// sentinel instead.
var horizontal = math.Inf(-1)

// ClipType selects the Boolean operation performed by Execute.
type ClipType int

const (
	Intersection ClipType = iota
	Union
	Difference
	Xor
)

// PathType tags input paths as subject or clip geometry.
type PathType int

const (
	Subject PathType = iota
	Clip
)

// FillRule determines which regions bounded by the input paths count
// as filled.
type FillRule int

const (
	EvenOdd FillRule = iota
	NonZero
	Positive
	Negative
)

//===============================================================================
// Internal structures
//===============================================================================

type vertexFlags uint8

const (
	vertexOpenStart vertexFlags = 1 << iota
	vertexOpenEnd
	vertexLocalMax
	vertexLocalMin
)

// vertex is one corner of an input path, linked into a ring.
type vertex struct {
	pt    Point
	next  *vertex
	prev  *vertex
	flags vertexFlags
}

// localMinima marks a vertex where both adjacent edges ascend. The
// sweep starts a left and a right bound here.
type localMinima struct {
	vertex   *vertex
	polytype PathType
	isOpen   bool
}

// outPt is one point of an output polygon, linked into a ring.
type outPt struct {
	pt   Point
	next *outPt
	prev *outPt
}

type outRecFlags uint8

const (
	outRecOpen outRecFlags = 1 << iota
	outRecOuter
)

// outRec collects the points of a single output polygon while it is
// being built. startEdge and endEdge are the two active edges
// currently contributing to it.
type outRec struct {
	idx       int
	owner     *outRec
	startEdge *active
	endEdge   *active
	pts       *outPt
	polypath  *PolyPath
	flags     outRecFlags
}

// active is an edge in the active edge list (AEL). bot and top are the
// edge's lower and upper vertices in sweep order; curr tracks the
// intersection with the current scanline.
type active struct {
	bot       Point
	curr      Point
	top       Point
	dx        float64
	windDx    int // 1 or -1 depending on winding direction
	windCnt   int
	windCnt2  int // winding count of the opposite polytype
	outrec    *outRec
	nextInAEL *active
	prevInAEL *active
	nextInSEL *active
	prevInSEL *active
	mergeJump *active
	vertexTop *vertex
	localMin  *localMinima
}

// intersectNode records a pending edge crossing within the current
// scanbeam.
type intersectNode struct {
	pt    Point
	edge1 *active
	edge2 *active
}

// scanlineQueue is a max-heap of scanline y values. The sweep moves
// from the largest y upward.
type scanlineQueue []CInt

func (q scanlineQueue) Len() int            { return len(q) }
func (q scanlineQueue) Less(i, j int) bool  { return q[i] > q[j] }
func (q scanlineQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *scanlineQueue) Push(x interface{}) { *q = append(*q, x.(CInt)) }
func (q *scanlineQueue) Pop() interface{} {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

//===============================================================================
// Small helpers
//===============================================================================

func absInt(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

func isOdd(i int) bool {
	return i&1 != 0
}

func isHotEdge(e *active) bool {
	return e.outrec != nil
}

func isStartSide(e *active) bool {
	return e == e.outrec.startEdge
}

func isHorizontalEdge(e *active) bool {
	return e.dx == horizontal
}

func isOpenEdge(e *active) bool {
	return e.localMin.isOpen
}

func topX(e *active, currentY CInt) CInt {
	if currentY == e.top.Y {
		return e.top.X
	}
	return e.bot.X + round(e.dx*float64(currentY-e.bot.Y))
}

func getPolyType(e *active) PathType {
	return e.localMin.polytype
}

func isSamePolyType(e1, e2 *active) bool {
	return e1.localMin.polytype == e2.localMin.polytype
}

func setDx(e *active) {
	dy := e.top.Y - e.bot.Y
	if dy == 0 {
		e.dx = horizontal
	} else {
		e.dx = float64(e.top.X-e.bot.X) / float64(dy)
	}
}

// nextVertex returns the vertex the edge will advance to, following
// the ring in the edge's winding direction.
func nextVertex(e *active) *vertex {
	if e.windDx > 0 {
		return e.vertexTop.next
	}
	return e.vertexTop.prev
}

func isMaximaEdge(e *active) bool {
	return e.vertexTop.flags&vertexLocalMax != 0
}

// getMaximaPair finds the edge that shares e's top vertex.
func getMaximaPair(e *active) *active {
	if isHorizontalEdge(e) {
		// The pair may be on either side of a horizontal edge.
		for e2 := e.prevInAEL; e2 != nil && e2.curr.X >= e.top.X; e2 = e2.prevInAEL {
			if e2.vertexTop == e.vertexTop {
				return e2
			}
		}
		for e2 := e.nextInAEL; e2 != nil && topX(e2, e.top.Y) <= e.top.X; e2 = e2.nextInAEL {
			if e2.vertexTop == e.vertexTop {
				return e2
			}
		}
		return nil
	}
	for e2 := e.nextInAEL; e2 != nil; e2 = e2.nextInAEL {
		if e2.vertexTop == e.vertexTop {
			return e2
		}
	}
	return nil
}

func getTopDeltaX(e1, e2 *active) CInt {
	if e1.top.Y > e2.top.Y { // e1's top is below e2's
		return topX(e2, e1.top.Y) - e1.top.X
	}
	return e2.top.X - topX(e1, e2.top.Y)
}

func e2InsertsBeforeE1(e1, e2 *active, preferLeft bool) bool {
	if e2.curr.X == e1.curr.X {
		if preferLeft {
			return getTopDeltaX(e1, e2) <= 0
		}
		return getTopDeltaX(e1, e2) < 0
	}
	return e2.curr.X < e1.curr.X
}

// getIntersectPoint computes where two edges cross, falling back to
// e1's position at its current y when the slopes are equal.
func getIntersectPoint(e1, e2 *active) Point {
	if e1.dx == e2.dx {
		return Point{topX(e1, e1.curr.Y), e1.curr.Y}
	}
	var ip Point
	if e1.dx == 0 {
		ip.X = e1.bot.X
		if isHorizontalEdge(e2) {
			ip.Y = e2.bot.Y
		} else {
			b2 := float64(e2.bot.Y) - float64(e2.bot.X)/e2.dx
			ip.Y = round(float64(ip.X)/e2.dx + b2)
		}
	} else if e2.dx == 0 {
		ip.X = e2.bot.X
		if isHorizontalEdge(e1) {
			ip.Y = e1.bot.Y
		} else {
			b1 := float64(e1.bot.Y) - float64(e1.bot.X)/e1.dx
			ip.Y = round(float64(ip.X)/e1.dx + b1)
		}
	} else {
		b1 := float64(e1.bot.X) - float64(e1.bot.Y)*e1.dx
		b2 := float64(e2.bot.X) - float64(e2.bot.Y)*e2.dx
		q := (b2 - b1) / (e1.dx - e2.dx)
		if math.Abs(e1.dx) < math.Abs(e2.dx) {
			ip.X = round(e1.dx*q + b1)
		} else {
			ip.X = round(e2.dx*q + b2)
		}
		ip.Y = round(q)
	}
	return ip
}

func reverseOutPts(op *outPt) {
	p1 := op
	for {
		p2 := p1.next
		p1.next = p1.prev
		p1.prev = p2
		p1 = p2
		if p1 == op {
			return
		}
	}
}

func setOutrecClockwise(outrec *outRec, startEdge, endEdge *active) {
	outrec.startEdge = startEdge
	outrec.endEdge = endEdge
	startEdge.outrec = outrec
	endEdge.outrec = outrec
}

func setOutrecCounterClockwise(outrec *outRec, startEdge, endEdge *active) {
	outrec.startEdge = endEdge
	outrec.endEdge = startEdge
	startEdge.outrec = outrec
	endEdge.outrec = outrec
}

func endOutrec(outrec *outRec) {
	outrec.startEdge.outrec = nil
	if outrec.endEdge != nil {
		outrec.endEdge.outrec = nil
	}
	outrec.startEdge = nil
	outrec.endEdge = nil
}

func pointCount(op *outPt) int {
	if op == nil {
		return 0
	}
	n := 0
	p := op
	for {
		n++
		p = p.next
		if p == op {
			return n
		}
	}
}

func swapOutrecs(e1, e2 *active) {
	or1 := e1.outrec
	or2 := e2.outrec
	if or1 == or2 {
		or1.startEdge, or1.endEdge = or1.endEdge, or1.startEdge
		return
	}
	if or1 != nil {
		if e1 == or1.startEdge {
			or1.startEdge = e2
		} else {
			or1.endEdge = e2
		}
	}
	if or2 != nil {
		if e2 == or2.startEdge {
			or2.startEdge = e1
		} else {
			or2.endEdge = e1
		}
	}
	e1.outrec = or2
	e2.outrec = or1
}

//===============================================================================
// Clipper
//===============================================================================

// Clipper accumulates subject and clip paths and executes Boolean
// clipping operations on them. The zero value is not usable; call
// NewClipper.
type Clipper struct {
	cliptype      ClipType
	fillrule      FillRule
	scanlines     scanlineQueue
	minimaList    []*localMinima
	currentLM     int
	minimaSorted  bool
	vertexList    [][]vertex
	actives       *active
	sel           *active
	outrecList    []*outRec
	intersectList []*intersectNode
	hasOpenPaths  bool
	locked        bool
}

// NewClipper returns an empty Clipper ready to accept paths.
func NewClipper() *Clipper {
	return &Clipper{}
}

// cleanUp discards the state of the last execution but keeps the
// input paths, so Execute may be called again.
func (c *Clipper) cleanUp() {
	for c.actives != nil {
		c.deleteFromAEL(c.actives)
	}
	c.scanlines = c.scanlines[:0]
	c.sel = nil
	c.intersectList = c.intersectList[:0]
	c.outrecList = c.outrecList[:0]
	c.currentLM = 0
}

// Clear removes all input paths and any prior results.
func (c *Clipper) Clear() {
	c.cleanUp()
	c.minimaList = c.minimaList[:0]
	c.vertexList = c.vertexList[:0]
	c.hasOpenPaths = false
	c.minimaSorted = false
}

func (c *Clipper) reset() {
	if !c.minimaSorted {
		sort.SliceStable(c.minimaList, func(i, j int) bool {
			return c.minimaList[i].vertex.pt.Y > c.minimaList[j].vertex.pt.Y
		})
		c.minimaSorted = true
	}
	c.scanlines = c.scanlines[:0]
	for _, lm := range c.minimaList {
		c.insertScanline(lm.vertex.pt.Y)
	}
	heap.Init(&c.scanlines)
	c.currentLM = 0
	c.actives = nil
	c.sel = nil
}

func (c *Clipper) insertScanline(y CInt) {
	heap.Push(&c.scanlines, y)
}

// popScanline removes and returns the largest queued y, draining any
// duplicates of it.
func (c *Clipper) popScanline() (CInt, bool) {
	if len(c.scanlines) == 0 {
		return 0, false
	}
	y := heap.Pop(&c.scanlines).(CInt)
	for len(c.scanlines) > 0 && c.scanlines[0] == y {
		heap.Pop(&c.scanlines)
	}
	return y, true
}

func (c *Clipper) popLocalMinima(y CInt) (*localMinima, bool) {
	if c.currentLM == len(c.minimaList) {
		return nil, false
	}
	lm := c.minimaList[c.currentLM]
	if lm.vertex.pt.Y == y {
		c.currentLM++
		return lm, true
	}
	return nil, false
}

func (c *Clipper) addLocMin(vert *vertex, pt PathType, isOpen bool) {
	// Make sure the vertex is added only once.
	if vert.flags&vertexLocalMin != 0 {
		return
	}
	vert.flags |= vertexLocalMin
	c.minimaList = append(c.minimaList, &localMinima{vertex: vert, polytype: pt, isOpen: isOpen})
}

func (c *Clipper) addPathToVertexList(path Path, polytype PathType, isOpen bool) {
	pathLen := len(path)
	for pathLen > 1 && path[pathLen-1] == path[0] {
		pathLen--
	}
	if pathLen < 2 {
		return
	}

	var p0IsMinima, p0IsMaxima, goingUp bool
	i := 1
	// Find the first non-horizontal segment in the path.
	for i < pathLen && path[i].Y == path[0].Y {
		i++
	}
	isFlat := i == pathLen
	if isFlat {
		if !isOpen {
			return // ignore closed paths that have zero area
		}
	} else {
		goingUp = path[i].Y < path[0].Y // inverted Y axis
		j := pathLen - 1
		for path[j].Y == path[0].Y {
			j--
		}
		if goingUp {
			p0IsMinima = path[j].Y < path[0].Y // path[0].Y is a minima
		} else {
			p0IsMaxima = path[j].Y > path[0].Y // path[0].Y is a maxima
		}
	}

	va := make([]vertex, pathLen)
	c.vertexList = append(c.vertexList, va)
	va[0].pt = path[0]

	if isOpen {
		va[0].flags |= vertexOpenStart
		if goingUp {
			c.addLocMin(&va[0], polytype, isOpen)
		} else {
			va[0].flags |= vertexLocalMax
		}
	}

	// Polygon orientation is determined later (see
	// insertLocalMinimaIntoAEL).
	i = 0
	for j := 1; j < pathLen; j++ {
		if path[j] == va[i].pt {
			continue // ie skips duplicates
		}
		va[j].pt = path[j]
		va[i].next = &va[j]
		va[j].prev = &va[i]
		if path[j].Y > path[i].Y && goingUp {
			va[i].flags |= vertexLocalMax
			goingUp = false
		} else if path[j].Y < path[i].Y && !goingUp {
			goingUp = true
			c.addLocMin(&va[i], polytype, isOpen)
		}
		i = j
	}
	// i is now the index of the last distinct vertex.
	va[i].next = &va[0]
	va[0].prev = &va[i]

	if isOpen {
		va[i].flags |= vertexOpenEnd
		if goingUp {
			va[i].flags |= vertexLocalMax
		} else {
			c.addLocMin(&va[i], polytype, isOpen)
		}
	} else if goingUp {
		// The path ends going up, so find the local maxima past the
		// wrap-around.
		v := &va[i]
		for v.next.pt.Y <= v.pt.Y {
			v = v.next
		}
		v.flags |= vertexLocalMax
		if p0IsMinima {
			c.addLocMin(&va[0], polytype, isOpen)
		}
	} else {
		// The path ends going down, so find the local minima past the
		// wrap-around.
		v := &va[i]
		for v.next.pt.Y >= v.pt.Y {
			v = v.next
		}
		c.addLocMin(v, polytype, isOpen)
		if p0IsMaxima {
			va[0].flags |= vertexLocalMax
		}
	}
}

// AddPath queues a path for the next Execute call. Open paths may only
// be subjects; coordinates must fit the supported range.
func (c *Clipper) AddPath(path Path, pt PathType, isOpen bool) error {
	if isOpen {
		if pt == Clip {
			return ErrOpenClipPath
		}
		c.hasOpenPaths = true
	}
	for _, p := range path {
		if p.X > rangeLimit || p.X < -rangeLimit ||
			p.Y > rangeLimit || p.Y < -rangeLimit {
			return ErrOutOfRange
		}
	}
	c.minimaSorted = false
	c.addPathToVertexList(path, pt, isOpen)
	return nil
}

// AddPaths queues multiple paths for the next Execute call.
func (c *Clipper) AddPaths(paths Paths, pt PathType, isOpen bool) error {
	for _, path := range paths {
		if err := c.AddPath(path, pt, isOpen); err != nil {
			return err
		}
	}
	return nil
}

// GetBounds returns the bounding rectangle of all queued paths.
func (c *Clipper) GetBounds() Rect {
	if len(c.minimaList) == 0 {
		return Rect{}
	}
	r := Rect{Left: rangeLimit, Top: rangeLimit, Right: -rangeLimit, Bottom: -rangeLimit}
	for _, lm := range c.minimaList {
		v := lm.vertex
		for {
			if v.pt.X < r.Left {
				r.Left = v.pt.X
			}
			if v.pt.X > r.Right {
				r.Right = v.pt.X
			}
			if v.pt.Y < r.Top {
				r.Top = v.pt.Y
			}
			if v.pt.Y > r.Bottom {
				r.Bottom = v.pt.Y
			}
			v = v.next
			if v == lm.vertex {
				break
			}
		}
	}
	return r
}

//===============================================================================
// Winding and contribution
//===============================================================================

func (c *Clipper) isContributingClosed(e *active) bool {
	switch c.fillrule {
	case NonZero:
		if absInt(e.windCnt) != 1 {
			return false
		}
	case Positive:
		if e.windCnt != 1 {
			return false
		}
	case Negative:
		if e.windCnt != -1 {
			return false
		}
	}
	switch c.cliptype {
	case Intersection:
		switch c.fillrule {
		case EvenOdd, NonZero:
			return e.windCnt2 != 0
		case Positive:
			return e.windCnt2 > 0
		case Negative:
			return e.windCnt2 < 0
		}
	case Union:
		switch c.fillrule {
		case EvenOdd, NonZero:
			return e.windCnt2 == 0
		case Positive:
			return e.windCnt2 <= 0
		case Negative:
			return e.windCnt2 >= 0
		}
	case Difference:
		if getPolyType(e) == Subject {
			switch c.fillrule {
			case EvenOdd, NonZero:
				return e.windCnt2 == 0
			case Positive:
				return e.windCnt2 <= 0
			case Negative:
				return e.windCnt2 >= 0
			}
		} else {
			switch c.fillrule {
			case EvenOdd, NonZero:
				return e.windCnt2 != 0
			case Positive:
				return e.windCnt2 > 0
			case Negative:
				return e.windCnt2 < 0
			}
		}
	case Xor:
		return true
	}
	return false
}

func (c *Clipper) isContributingOpen(e *active) bool {
	switch c.cliptype {
	case Intersection:
		return e.windCnt2 != 0
	case Union:
		return e.windCnt == 0 && e.windCnt2 == 0
	case Difference:
		return e.windCnt2 == 0
	case Xor:
		return e.windCnt != 0 != (e.windCnt2 != 0)
	}
	return false
}

// setWindingLeftEdgeOpen sets the winding counts for an open path edge
// just inserted at a local minimum.
func (c *Clipper) setWindingLeftEdgeOpen(e *active) {
	e2 := c.actives
	if c.fillrule == EvenOdd {
		cnt1, cnt2 := 0, 0
		for e2 != e {
			if getPolyType(e2) == Clip {
				cnt2++
			} else if !isOpenEdge(e2) {
				cnt1++
			}
			e2 = e2.nextInAEL
		}
		if isOdd(cnt1) {
			e.windCnt = 1
		}
		if isOdd(cnt2) {
			e.windCnt2 = 1
		}
	} else {
		for e2 != e {
			if getPolyType(e2) == Clip {
				e.windCnt2 += e2.windDx
			} else if !isOpenEdge(e2) {
				e.windCnt += e2.windDx
			}
			e2 = e2.nextInAEL
		}
	}
}

// setWindingLeftEdgeClosed sets the winding counts for a closed path
// edge just inserted at a local minimum, scanning leftward through the
// AEL.
func (c *Clipper) setWindingLeftEdgeClosed(leftE *active) {
	// Find the nearest closed-path edge of the same polytype to the
	// left; its winding seeds leftE's.
	e := leftE.prevInAEL
	for e != nil && (!isSamePolyType(e, leftE) || isOpenEdge(e)) {
		e = e.prevInAEL
	}
	if e == nil {
		leftE.windCnt = leftE.windDx
		e = c.actives
	} else if c.fillrule == EvenOdd {
		leftE.windCnt = leftE.windDx
		leftE.windCnt2 = e.windCnt2
		e = e.nextInAEL
	} else {
		// NonZero, Positive or Negative filling.
		if e.windCnt*e.windDx < 0 {
			// Opposite directions, so "outside" the previous edge.
			if absInt(e.windCnt) > 1 {
				if e.windDx*leftE.windDx < 0 {
					leftE.windCnt = e.windCnt
				} else {
					leftE.windCnt = e.windCnt + leftE.windDx
				}
			} else if isOpenEdge(leftE) {
				leftE.windCnt = 1
			} else {
				leftE.windCnt = leftE.windDx
			}
		} else {
			// Same directions, so "inside" the previous edge.
			if e.windDx*leftE.windDx < 0 {
				leftE.windCnt = e.windCnt
			} else {
				leftE.windCnt = e.windCnt + leftE.windDx
			}
		}
		leftE.windCnt2 = e.windCnt2
		e = e.nextInAEL
	}

	// Update windCnt2 from the edges of the opposite polytype between
	// e and leftE.
	if c.fillrule == EvenOdd {
		for e != leftE {
			if !isSamePolyType(e, leftE) && !isOpenEdge(e) {
				if leftE.windCnt2 == 0 {
					leftE.windCnt2 = 1
				} else {
					leftE.windCnt2 = 0
				}
			}
			e = e.nextInAEL
		}
	} else {
		for e != leftE {
			if !isSamePolyType(e, leftE) && !isOpenEdge(e) {
				leftE.windCnt2 += e.windDx
			}
			e = e.nextInAEL
		}
	}
}

//===============================================================================
// Active edge list
//===============================================================================

func (c *Clipper) insertEdgeIntoAEL(e, startEdge *active, preferLeft bool) {
	if c.actives == nil {
		e.prevInAEL = nil
		e.nextInAEL = nil
		c.actives = e
		return
	}
	if startEdge == nil && e2InsertsBeforeE1(c.actives, e, preferLeft) {
		e.prevInAEL = nil
		e.nextInAEL = c.actives
		c.actives.prevInAEL = e
		c.actives = e
		return
	}
	if startEdge == nil {
		startEdge = c.actives
	}
	for startEdge.nextInAEL != nil &&
		!e2InsertsBeforeE1(startEdge.nextInAEL, e, preferLeft) {
		startEdge = startEdge.nextInAEL
		preferLeft = false // if there's one intervening edge, all bets are off
	}
	e.nextInAEL = startEdge.nextInAEL
	if startEdge.nextInAEL != nil {
		startEdge.nextInAEL.prevInAEL = e
	}
	e.prevInAEL = startEdge
	startEdge.nextInAEL = e
}

func (c *Clipper) deleteFromAEL(e *active) {
	prev := e.prevInAEL
	next := e.nextInAEL
	if prev == nil && next == nil && e != c.actives {
		return // already deleted
	}
	if prev != nil {
		prev.nextInAEL = next
	} else {
		c.actives = next
	}
	if next != nil {
		next.prevInAEL = prev
	}
	e.nextInAEL = nil
	e.prevInAEL = nil
}

func (c *Clipper) copyAELToSEL() {
	e := c.actives
	c.sel = e
	for e != nil {
		e.prevInSEL = e.prevInAEL
		e.nextInSEL = e.nextInAEL
		e = e.nextInAEL
	}
}

func (c *Clipper) swapPositionsInAEL(e1, e2 *active) {
	// Check that neither edge has already been removed from the AEL.
	if e1.nextInAEL == e1.prevInAEL || e2.nextInAEL == e2.prevInAEL {
		return
	}
	if e1.nextInAEL == e2 {
		next := e2.nextInAEL
		if next != nil {
			next.prevInAEL = e1
		}
		prev := e1.prevInAEL
		if prev != nil {
			prev.nextInAEL = e2
		}
		e2.prevInAEL = prev
		e2.nextInAEL = e1
		e1.prevInAEL = e2
		e1.nextInAEL = next
	} else if e2.nextInAEL == e1 {
		next := e1.nextInAEL
		if next != nil {
			next.prevInAEL = e2
		}
		prev := e2.prevInAEL
		if prev != nil {
			prev.nextInAEL = e1
		}
		e1.prevInAEL = prev
		e1.nextInAEL = e2
		e2.prevInAEL = e1
		e2.nextInAEL = next
	} else {
		next := e1.nextInAEL
		prev := e1.prevInAEL
		e1.nextInAEL = e2.nextInAEL
		if e1.nextInAEL != nil {
			e1.nextInAEL.prevInAEL = e1
		}
		e1.prevInAEL = e2.prevInAEL
		if e1.prevInAEL != nil {
			e1.prevInAEL.nextInAEL = e1
		}
		e2.nextInAEL = next
		if e2.nextInAEL != nil {
			e2.nextInAEL.prevInAEL = e2
		}
		e2.prevInAEL = prev
		if e2.prevInAEL != nil {
			e2.prevInAEL.nextInAEL = e2
		}
	}
	if e1.prevInAEL == nil {
		c.actives = e1
	} else if e2.prevInAEL == nil {
		c.actives = e2
	}
}

func (c *Clipper) swapPositionsInSEL(e1, e2 *active) {
	if e1.nextInSEL == nil && e1.prevInSEL == nil {
		return
	}
	if e2.nextInSEL == nil && e2.prevInSEL == nil {
		return
	}
	if e1.nextInSEL == e2 {
		next := e2.nextInSEL
		if next != nil {
			next.prevInSEL = e1
		}
		prev := e1.prevInSEL
		if prev != nil {
			prev.nextInSEL = e2
		}
		e2.prevInSEL = prev
		e2.nextInSEL = e1
		e1.prevInSEL = e2
		e1.nextInSEL = next
	} else if e2.nextInSEL == e1 {
		next := e1.nextInSEL
		if next != nil {
			next.prevInSEL = e2
		}
		prev := e2.prevInSEL
		if prev != nil {
			prev.nextInSEL = e1
		}
		e1.prevInSEL = prev
		e1.nextInSEL = e2
		e2.prevInSEL = e1
		e2.nextInSEL = next
	} else {
		next := e1.nextInSEL
		prev := e1.prevInSEL
		e1.nextInSEL = e2.nextInSEL
		if e1.nextInSEL != nil {
			e1.nextInSEL.prevInSEL = e1
		}
		e1.prevInSEL = e2.prevInSEL
		if e1.prevInSEL != nil {
			e1.prevInSEL.nextInSEL = e1
		}
		e2.nextInSEL = next
		if e2.nextInSEL != nil {
			e2.nextInSEL.prevInSEL = e2
		}
		e2.prevInSEL = prev
		if e2.prevInSEL != nil {
			e2.prevInSEL.nextInSEL = e2
		}
	}
	if e1.prevInSEL == nil {
		c.sel = e1
	} else if e2.prevInSEL == nil {
		c.sel = e2
	}
}

//===============================================================================
// Local minima insertion
//===============================================================================

func (c *Clipper) insertLocalMinimaIntoAEL(botY CInt) error {
	// Add any local minima at botY. Horizontal minima edges are
	// processed after the non-horizontal ones, via the horizontal
	// stack.
	for {
		lm, ok := c.popLocalMinima(botY)
		if !ok {
			break
		}
		var leftBound, rightBound *active
		if lm.vertex.flags&vertexOpenStart == 0 {
			leftBound = &active{
				bot:       lm.vertex.pt,
				curr:      lm.vertex.pt,
				vertexTop: lm.vertex.prev, // descending
				top:       lm.vertex.prev.pt,
				windDx:    -1,
				localMin:  lm,
			}
			setDx(leftBound)
		}
		if lm.vertex.flags&vertexOpenEnd == 0 {
			rightBound = &active{
				bot:       lm.vertex.pt,
				curr:      lm.vertex.pt,
				vertexTop: lm.vertex.next, // ascending
				top:       lm.vertex.next.pt,
				windDx:    1,
				localMin:  lm,
			}
			setDx(rightBound)
		}

		// So far leftBound is just the descending bound and rightBound
		// the ascending one; swap them when the descending bound in
		// fact sits to the right.
		if leftBound != nil && rightBound != nil {
			if (isHorizontalEdge(leftBound) && leftBound.top.X > leftBound.bot.X) ||
				(!isHorizontalEdge(leftBound) && leftBound.dx < rightBound.dx) {
				leftBound, rightBound = rightBound, leftBound
			}
		} else if leftBound == nil {
			leftBound = rightBound
			rightBound = nil
		}

		contributing := false
		c.insertEdgeIntoAEL(leftBound, nil, false)
		if isOpenEdge(leftBound) {
			c.setWindingLeftEdgeOpen(leftBound)
			contributing = c.isContributingOpen(leftBound)
		} else {
			c.setWindingLeftEdgeClosed(leftBound)
			contributing = c.isContributingClosed(leftBound)
		}

		if rightBound != nil {
			rightBound.windCnt = leftBound.windCnt
			rightBound.windCnt2 = leftBound.windCnt2
			c.insertEdgeIntoAEL(rightBound, leftBound, false)
			if contributing {
				c.addLocalMinPoly(leftBound, rightBound, leftBound.bot)
			}
			if isHorizontalEdge(rightBound) {
				c.pushHorz(rightBound)
			} else {
				c.insertScanline(rightBound.top.Y)
			}
		} else if contributing {
			c.startOpenPath(leftBound, leftBound.bot)
		}

		if isHorizontalEdge(leftBound) {
			c.pushHorz(leftBound)
		} else {
			c.insertScanline(leftBound.top.Y)
		}

		if rightBound != nil && leftBound.nextInAEL != rightBound {
			// Intersect the edges that sit between the two bounds.
			// intersectEdges assumes rightBound will be to the right of
			// e above the intersection.
			for e := leftBound.nextInAEL; e != rightBound; e = e.nextInAEL {
				if err := c.intersectEdges(rightBound, e, rightBound.bot); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (c *Clipper) pushHorz(e *active) {
	if c.sel != nil {
		e.nextInSEL = c.sel
	} else {
		e.nextInSEL = nil
	}
	c.sel = e
}

func (c *Clipper) popHorz() (*active, bool) {
	if c.sel == nil {
		return nil, false
	}
	e := c.sel
	c.sel = e.nextInSEL
	return e, true
}

//===============================================================================
// Output polygon construction
//===============================================================================

// getOwner finds the output polygon that will contain the one about to
// be started at edge e, scanning leftward through the AEL (rightward
// when e is a horizontal running right to left).
func (c *Clipper) getOwner(e *active) *outRec {
	if isHorizontalEdge(e) && e.top.X < e.bot.X {
		for e = e.nextInAEL; e != nil &&
			(!isHotEdge(e) || isOpenEdge(e)); e = e.nextInAEL {
		}
		if e == nil {
			return nil
		}
		if (e.outrec.flags&outRecOuter != 0) == (e.outrec.startEdge == e) {
			return e.outrec.owner
		}
		return e.outrec
	}
	for e = e.prevInAEL; e != nil &&
		(!isHotEdge(e) || isOpenEdge(e)); e = e.prevInAEL {
	}
	if e == nil {
		return nil
	}
	if (e.outrec.flags&outRecOuter != 0) == (e.outrec.endEdge == e) {
		return e.outrec.owner
	}
	return e.outrec
}

func (c *Clipper) addLocalMinPoly(e1, e2 *active, pt Point) {
	outrec := &outRec{idx: len(c.outrecList)}
	c.outrecList = append(c.outrecList, outrec)
	outrec.owner = c.getOwner(e1)
	if outrec.owner == nil || outrec.owner.flags&outRecOuter == 0 {
		outrec.flags |= outRecOuter
	}
	if isOpenEdge(e1) {
		outrec.flags |= outRecOpen
	}

	// Now set orientation. Outer polygons wind clockwise on the
	// inverted axis, holes the other way.
	outer := outrec.flags&outRecOuter != 0
	if isHorizontalEdge(e1) {
		if isHorizontalEdge(e2) {
			if outer == (e1.bot.X > e2.bot.X) {
				setOutrecClockwise(outrec, e1, e2)
			} else {
				setOutrecCounterClockwise(outrec, e1, e2)
			}
		} else if outer == (e1.top.X < e1.bot.X) {
			setOutrecClockwise(outrec, e1, e2)
		} else {
			setOutrecCounterClockwise(outrec, e1, e2)
		}
	} else if isHorizontalEdge(e2) {
		if outer == (e2.top.X > e2.bot.X) {
			setOutrecClockwise(outrec, e1, e2)
		} else {
			setOutrecCounterClockwise(outrec, e1, e2)
		}
	} else if outer == (e1.dx >= e2.dx) {
		setOutrecClockwise(outrec, e1, e2)
	} else {
		setOutrecCounterClockwise(outrec, e1, e2)
	}

	op := &outPt{pt: pt}
	op.next = op
	op.prev = op
	outrec.pts = op
}

func (c *Clipper) addLocalMaxPoly(e1, e2 *active, pt Point) error {
	if !isHotEdge(e2) {
		return &ClippingError{Op: "addLocalMaxPoly"}
	}
	c.addOutPt(e1, pt)
	if e1.outrec == e2.outrec {
		endOutrec(e1.outrec)
	} else if e1.outrec.idx < e2.outrec.idx {
		return c.joinOutrecPaths(e1, e2)
	} else {
		return c.joinOutrecPaths(e2, e1)
	}
	return nil
}

// joinOutrecPaths concatenates e2's output ring onto e1's when their
// polygons meet at a local maximum. Only very rarely do the joining
// ends share the same coordinates.
func (c *Clipper) joinOutrecPaths(e1, e2 *active) error {
	p1Start := e1.outrec.pts
	p2Start := e2.outrec.pts
	p1End := p1Start.prev
	p2End := p2Start.prev

	if isStartSide(e1) {
		if isStartSide(e2) {
			// Reversing avoids a self-intersecting ring.
			reverseOutPts(p2Start)
			p2Start.next = p1Start
			p1Start.prev = p2Start
			p1End.next = p2End // p2 now reversed
			p2End.prev = p1End
			e1.outrec.pts = p2End
			e1.outrec.startEdge = e2.outrec.endEdge
		} else {
			p2End.next = p1Start
			p1Start.prev = p2End
			p2Start.prev = p1End
			p1End.next = p2Start
			e1.outrec.pts = p2Start
			e1.outrec.startEdge = e2.outrec.startEdge
		}
		if e1.outrec.startEdge != nil { // ie closed path
			e1.outrec.startEdge.outrec = e1.outrec
		}
	} else {
		if isStartSide(e2) {
			p1End.next = p2Start
			p2Start.prev = p1End
			p1Start.prev = p2End
			p2End.next = p1Start
			e1.outrec.endEdge = e2.outrec.endEdge
		} else {
			reverseOutPts(p2Start)
			p1End.next = p2End // p2 now reversed
			p2End.prev = p1End
			p2Start.next = p1Start
			p1Start.prev = p2Start
			e1.outrec.endEdge = e2.outrec.startEdge
		}
		if e1.outrec.endEdge != nil { // ie closed path
			e1.outrec.endEdge.outrec = e1.outrec
		}
	}

	if e1.outrec.owner == e2.outrec {
		return &ClippingError{Op: "joinOutrecPaths"}
	}

	// After joining, e2's outrec contains no vertices.
	e2.outrec.startEdge = nil
	e2.outrec.endEdge = nil
	e2.outrec.pts = nil
	e2.outrec.owner = e1.outrec

	// e1 and e2 are maxima and are about to be dropped from the AEL.
	e1.outrec = nil
	e2.outrec = nil
	return nil
}

func (c *Clipper) addOutPt(e *active, pt Point) {
	// outrec.pts is a circular doubly-linked list; pts is the start
	// side of the ring and pts.prev the end side.
	toStart := isStartSide(e)
	startOp := e.outrec.pts
	endOp := startOp.prev
	if toStart {
		if pt == startOp.pt {
			return
		}
	} else if pt == endOp.pt {
		return
	}
	op := &outPt{pt: pt, next: startOp, prev: endOp}
	endOp.next = op
	startOp.prev = op
	if toStart {
		e.outrec.pts = op
	}
}

func (c *Clipper) terminateHotOpen(e *active) {
	if e.outrec.startEdge == e {
		e.outrec.startEdge = nil
	} else {
		e.outrec.endEdge = nil
	}
	e.outrec = nil
}

func (c *Clipper) startOpenPath(e *active, pt Point) {
	outrec := &outRec{idx: len(c.outrecList), flags: outRecOpen}
	c.outrecList = append(c.outrecList, outrec)
	e.outrec = outrec

	op := &outPt{pt: pt}
	op.next = op
	op.prev = op
	outrec.pts = op
}

func (c *Clipper) updateEdgeIntoAEL(e *active) {
	e.bot = e.top
	e.vertexTop = nextVertex(e)
	e.top = e.vertexTop.pt
	e.curr = e.bot
	setDx(e)
	if !isHorizontalEdge(e) {
		c.insertScanline(e.top.Y)
	}
}

//===============================================================================
// Edge intersection
//===============================================================================

func (c *Clipper) intersectEdges(e1, e2 *active, pt Point) error {
	e1.curr = pt
	e2.curr = pt

	// Open paths only clip against closed ones; crossings between two
	// open edges are ignored.
	if c.hasOpenPaths && (isOpenEdge(e1) || isOpenEdge(e2)) {
		if isOpenEdge(e1) && isOpenEdge(e2) {
			return nil
		}
		if isOpenEdge(e2) {
			e1, e2 = e2, e1
		}
		switch c.cliptype {
		case Intersection, Difference:
			if isSamePolyType(e1, e2) || absInt(e2.windCnt) != 1 {
				return nil
			}
		case Union:
			if absInt(e2.windCnt) != 1 || e2.windCnt2 != 0 {
				return nil
			}
		case Xor:
			if absInt(e2.windCnt) != 1 {
				return nil
			}
		}
		// Toggle the open edge's contribution.
		if isHotEdge(e1) {
			c.addOutPt(e1, pt)
			c.terminateHotOpen(e1)
		} else {
			c.startOpenPath(e1, pt)
		}
		return nil
	}

	// Update winding counts. Assumes e1 is left of e2 in the AEL just
	// before the intersection.
	var oldE1WindCnt, oldE2WindCnt int
	if isSamePolyType(e1, e2) {
		if c.fillrule == EvenOdd {
			oldE1WindCnt = e1.windCnt
			e1.windCnt = e2.windCnt
			e2.windCnt = oldE1WindCnt
		} else {
			if e1.windCnt+e2.windDx == 0 {
				e1.windCnt = -e1.windCnt
			} else {
				e1.windCnt += e2.windDx
			}
			if e2.windCnt-e1.windDx == 0 {
				e2.windCnt = -e2.windCnt
			} else {
				e2.windCnt -= e1.windDx
			}
		}
	} else {
		if c.fillrule != EvenOdd {
			e1.windCnt2 += e2.windDx
		} else if e1.windCnt2 == 0 {
			e1.windCnt2 = 1
		} else {
			e1.windCnt2 = 0
		}
		if c.fillrule != EvenOdd {
			e2.windCnt2 -= e1.windDx
		} else if e2.windCnt2 == 0 {
			e2.windCnt2 = 1
		} else {
			e2.windCnt2 = 0
		}
	}

	switch c.fillrule {
	case Positive:
		oldE1WindCnt = e1.windCnt
		oldE2WindCnt = e2.windCnt
	case Negative:
		oldE1WindCnt = -e1.windCnt
		oldE2WindCnt = -e2.windCnt
	default:
		oldE1WindCnt = absInt(e1.windCnt)
		oldE2WindCnt = absInt(e2.windCnt)
	}

	if isHotEdge(e1) && isHotEdge(e2) {
		if (oldE1WindCnt != 0 && oldE1WindCnt != 1) ||
			(oldE2WindCnt != 0 && oldE2WindCnt != 1) ||
			(!isSamePolyType(e1, e2) && c.cliptype != Xor) {
			if err := c.addLocalMaxPoly(e1, e2, pt); err != nil {
				return err
			}
		} else if e1.outrec == e2.outrec {
			// Optional: treat a touching pair as a maxima and a new
			// minimum to avoid micro self-intersections.
			if err := c.addLocalMaxPoly(e1, e2, pt); err != nil {
				return err
			}
			c.addLocalMinPoly(e1, e2, pt)
		} else {
			c.addOutPt(e1, pt)
			c.addOutPt(e2, pt)
			swapOutrecs(e1, e2)
		}
	} else if isHotEdge(e1) {
		if oldE2WindCnt == 0 || oldE2WindCnt == 1 {
			c.addOutPt(e1, pt)
			swapOutrecs(e1, e2)
		}
	} else if isHotEdge(e2) {
		if oldE1WindCnt == 0 || oldE1WindCnt == 1 {
			c.addOutPt(e2, pt)
			swapOutrecs(e1, e2)
		}
	} else if (oldE1WindCnt == 0 || oldE1WindCnt == 1) &&
		(oldE2WindCnt == 0 || oldE2WindCnt == 1) {
		// Neither edge is hot; the crossing may still start a polygon.
		var e1Wc2, e2Wc2 int
		switch c.fillrule {
		case Positive:
			e1Wc2 = e1.windCnt2
			e2Wc2 = e2.windCnt2
		case Negative:
			e1Wc2 = -e1.windCnt2
			e2Wc2 = -e2.windCnt2
		default:
			e1Wc2 = absInt(e1.windCnt2)
			e2Wc2 = absInt(e2.windCnt2)
		}
		if !isSamePolyType(e1, e2) {
			c.addLocalMinPoly(e1, e2, pt)
		} else if oldE1WindCnt == 1 && oldE2WindCnt == 1 {
			switch c.cliptype {
			case Intersection:
				if e1Wc2 > 0 && e2Wc2 > 0 {
					c.addLocalMinPoly(e1, e2, pt)
				}
			case Union:
				if e1Wc2 <= 0 && e2Wc2 <= 0 {
					c.addLocalMinPoly(e1, e2, pt)
				}
			case Difference:
				if (getPolyType(e1) == Clip && e1Wc2 > 0 && e2Wc2 > 0) ||
					(getPolyType(e1) == Subject && e1Wc2 <= 0 && e2Wc2 <= 0) {
					c.addLocalMinPoly(e1, e2, pt)
				}
			case Xor:
				c.addLocalMinPoly(e1, e2, pt)
			}
		}
	}
	return nil
}

//===============================================================================
// Intersection list
//===============================================================================

func (c *Clipper) processIntersections(topY CInt) error {
	c.buildIntersectList(topY)
	if len(c.intersectList) == 0 {
		return nil
	}
	c.fixupIntersectionOrder()
	return c.processIntersectList()
}

// insertNewIntersectNode records a crossing of two adjacent SEL edges,
// clamping the rounded intersection point into the current scanbeam.
func (c *Clipper) insertNewIntersectNode(e1, e2 *active, topY CInt) {
	pt := getIntersectPoint(e1, e2)
	// Rounding errors can place pt outside the scanbeam; clamp it and
	// recompute x on the more vertical edge (the one with smaller |dx|).
	if pt.Y > e1.curr.Y {
		pt.Y = e1.curr.Y
		if math.Abs(e1.dx) < math.Abs(e2.dx) {
			pt.X = topX(e1, pt.Y)
		} else {
			pt.X = topX(e2, pt.Y)
		}
	} else if pt.Y < topY {
		pt.Y = topY
		if e1.top.Y == topY {
			pt.X = e1.top.X
		} else if e2.top.Y == topY {
			pt.X = e2.top.X
		} else if math.Abs(e1.dx) < math.Abs(e2.dx) {
			pt.X = e1.curr.X
		} else {
			pt.X = e2.curr.X
		}
	}
	c.intersectList = append(c.intersectList, &intersectNode{pt: pt, edge1: e1, edge2: e2})
}

// buildIntersectList finds every crossing within the scanbeam ending
// at topY by merge-sorting the SEL into its top-of-beam order; each
// swap during the sort is a crossing.
func (c *Clipper) buildIntersectList(topY CInt) {
	if c.actives == nil || c.actives.nextInAEL == nil {
		return
	}

	c.copyAELToSEL()
	for e := c.actives; e != nil; e = e.nextInAEL {
		e.curr.X = topX(e, topY)
	}

	mul := 1
	for {
		first := c.sel
		var prevBase *active
		for first != nil {
			var second *active
			if mul == 1 {
				second = first.nextInSEL
				if second == nil {
					first.mergeJump = nil
					break
				}
				first.mergeJump = second.nextInSEL
			} else {
				second = first.mergeJump
				if second == nil {
					first.mergeJump = nil
					break
				}
				first.mergeJump = second.mergeJump
			}

			// Merge the two sorted groups headed by first and second.
			baseE := first
			lCnt, rCnt := mul, mul
			for lCnt > 0 && rCnt > 0 {
				if second.curr.X < first.curr.X {
					// Each left-group edge that second passes is a
					// crossing inside the beam.
					tmp := second.prevInSEL
					for i := 0; i < lCnt; i++ {
						c.insertNewIntersectNode(tmp, second, topY)
						tmp = tmp.prevInSEL
					}
					if first == baseE {
						if prevBase != nil {
							prevBase.mergeJump = second
						}
						baseE = second
						baseE.mergeJump = first.mergeJump
						if first.prevInSEL == nil {
							c.sel = second
						}
					}
					tmp = second.nextInSEL
					c.insert2Before1InSel(first, second)
					second = tmp
					if second == nil {
						break
					}
					rCnt--
				} else {
					first = first.nextInSEL
					lCnt--
				}
			}
			first = baseE.mergeJump
			prevBase = baseE
		}
		if c.sel.mergeJump == nil {
			break
		}
		mul <<= 1
	}
}

func (c *Clipper) insert2Before1InSel(first, second *active) {
	// Remove second from the list; second always has a prev because it
	// is moving from right to left.
	prev := second.prevInSEL
	next := second.nextInSEL
	prev.nextInSEL = next
	if next != nil {
		next.prevInSEL = prev
	}
	// And insert it back in front of first.
	prev = first.prevInSEL
	if prev != nil {
		prev.nextInSEL = second
	}
	first.prevInSEL = second
	second.prevInSEL = prev
	second.nextInSEL = first
}

func (c *Clipper) processIntersectList() error {
	for _, node := range c.intersectList {
		if err := c.intersectEdges(node.edge1, node.edge2, node.pt); err != nil {
			return err
		}
		c.swapPositionsInAEL(node.edge1, node.edge2)
	}
	c.intersectList = c.intersectList[:0]
	return nil
}

// fixupIntersectionOrder reorders the intersect list so that each
// crossing is processed only when its two edges are adjacent in the
// AEL.
func (c *Clipper) fixupIntersectionOrder() {
	cnt := len(c.intersectList)
	if cnt < 3 {
		return
	}
	// Process crossings from the bottom of the scanbeam up.
	sort.Slice(c.intersectList, func(i, j int) bool {
		return c.intersectList[i].pt.Y > c.intersectList[j].pt.Y
	})
	c.copyAELToSEL()
	for i := 0; i < cnt; i++ {
		if !edgesAdjacentInSEL(c.intersectList[i]) {
			j := i + 1
			for j < cnt && !edgesAdjacentInSEL(c.intersectList[j]) {
				j++
			}
			c.intersectList[i], c.intersectList[j] =
				c.intersectList[j], c.intersectList[i]
		}
		c.swapPositionsInSEL(c.intersectList[i].edge1, c.intersectList[i].edge2)
	}
}

func edgesAdjacentInSEL(node *intersectNode) bool {
	return node.edge1.nextInSEL == node.edge2 ||
		node.edge1.prevInSEL == node.edge2
}

//===============================================================================
// Horizontal edges
//===============================================================================

func resetHorzDirection(horz, maxPair *active) (horzLeft, horzRight CInt, leftToRight bool) {
	if horz.bot.X == horz.top.X {
		// A degenerate horizontal; direction follows the AEL position
		// of its maxima pair.
		horzLeft = horz.curr.X
		horzRight = horz.curr.X
		e := horz.nextInAEL
		for e != nil && e != maxPair {
			e = e.nextInAEL
		}
		return horzLeft, horzRight, e != nil
	}
	if horz.curr.X < horz.top.X {
		return horz.curr.X, horz.top.X, true
	}
	return horz.top.X, horz.curr.X, false
}

// processHorizontal walks a horizontal edge (or a chain of consecutive
// horizontals) across the AEL, intersecting everything it passes.
//
// Horizontal edges at scanline intersections are processed as if
// layered. The order in which they are processed doesn't matter. They
// intersect with the bottom vertices of other horizontals and with
// non-horizontal edges; once those intersections are done,
// intermediate horizontals are promoted to the next edge in their
// bounds, which may in turn be intersected by other horizontals.
func (c *Clipper) processHorizontal(horz *active) error {
	// With closed paths, simplify consecutive horizontals into a
	// single edge.
	if !isOpenEdge(horz) {
		pt := horz.bot
		for !isMaximaEdge(horz) && nextVertex(horz).pt.Y == pt.Y {
			c.updateEdgeIntoAEL(horz)
		}
		horz.bot = pt
		horz.curr = pt
	}

	var maxPair *active
	if isMaximaEdge(horz) && (!isOpenEdge(horz) ||
		horz.vertexTop.flags&(vertexOpenStart|vertexOpenEnd) == 0) {
		maxPair = getMaximaPair(horz)
	}

	horzLeft, horzRight, leftToRight := resetHorzDirection(horz, maxPair)
	if isHotEdge(horz) {
		c.addOutPt(horz, horz.curr)
	}

	for { // loop through consecutive horizontal edges (if open)
		isMax := isMaximaEdge(horz)
		var e *active
		if leftToRight {
			e = horz.nextInAEL
		} else {
			e = horz.prevInAEL
		}
		for e != nil {
			// Break if we've gone past the end of the horizontal.
			if (leftToRight && e.curr.X > horzRight) ||
				(!leftToRight && e.curr.X < horzLeft) {
				break
			}
			// Or if we've reached the end of an intermediate
			// horizontal edge.
			if e.curr.X == horz.top.X && !isMax && !isHorizontalEdge(e) {
				pt := nextVertex(horz).pt
				if (leftToRight && topX(e, pt.Y) >= pt.X) ||
					(!leftToRight && topX(e, pt.Y) <= pt.X) {
					break
				}
			}

			if e == maxPair {
				if isHotEdge(horz) {
					if err := c.addLocalMaxPoly(horz, e, horz.top); err != nil {
						return err
					}
				}
				c.deleteFromAEL(e)
				c.deleteFromAEL(horz)
				return nil
			}

			pt := Point{e.curr.X, horz.curr.Y}
			if leftToRight {
				if err := c.intersectEdges(horz, e, pt); err != nil {
					return err
				}
			} else {
				if err := c.intersectEdges(e, horz, pt); err != nil {
					return err
				}
			}
			var nextE *active
			if leftToRight {
				nextE = e.nextInAEL
			} else {
				nextE = e.prevInAEL
			}
			c.swapPositionsInAEL(horz, e)
			e = nextE
		}

		// Check if we've finished with (consecutive) horizontals.
		if isMax || nextVertex(horz).pt.Y != horz.top.Y {
			break
		}

		// Still more horizontals in bound to process.
		c.updateEdgeIntoAEL(horz)
		horzLeft, horzRight, leftToRight = resetHorzDirection(horz, maxPair)

		if isOpenEdge(horz) {
			if isMaximaEdge(horz) {
				maxPair = getMaximaPair(horz)
			}
			if isHotEdge(horz) {
				c.addOutPt(horz, horz.bot)
			}
		}
	}

	if isHotEdge(horz) {
		c.addOutPt(horz, horz.top)
	}

	if !isOpenEdge(horz) {
		c.updateEdgeIntoAEL(horz) // this is the end of an intermediate horiz
	} else if !isMaximaEdge(horz) {
		c.updateEdgeIntoAEL(horz)
	} else if maxPair == nil { // ie open at top
		c.deleteFromAEL(horz)
	} else if isHotEdge(horz) {
		return c.addLocalMaxPoly(horz, maxPair, horz.top)
	} else {
		c.deleteFromAEL(maxPair)
		c.deleteFromAEL(horz)
	}
	return nil
}

//===============================================================================
// Top of scanbeam
//===============================================================================

func (c *Clipper) doTopOfScanbeam(y CInt) error {
	e := c.actives
	for e != nil {
		// nb: e will never be horizontal at this point.
		if e.top.Y == y {
			e.curr = e.top // needed for horizontal processing
			if isMaximaEdge(e) {
				next, err := c.doMaxima(e) // may delete e and its pair
				if err != nil {
					return err
				}
				e = next
				continue
			}
			// An intermediate vertex: advance e to the next segment
			// of its bound.
			c.updateEdgeIntoAEL(e)
			if isHotEdge(e) {
				c.addOutPt(e, e.bot)
			}
			if isHorizontalEdge(e) {
				c.pushHorz(e) // horizontals are processed later
			}
		} else {
			e.curr.Y = y
			e.curr.X = topX(e, y)
		}
		e = e.nextInAEL
	}
	return nil
}

// doMaxima handles an edge reaching a local maximum, returning the
// next AEL edge to examine.
func (c *Clipper) doMaxima(e *active) (*active, error) {
	prevE := e.prevInAEL
	nextE := e.nextInAEL
	if isOpenEdge(e) && e.vertexTop.flags&(vertexOpenStart|vertexOpenEnd) != 0 {
		// An open path end; there is no pair to cancel with.
		if isHotEdge(e) {
			c.addOutPt(e, e.top)
		}
		if !isHorizontalEdge(e) {
			if isHotEdge(e) {
				c.terminateHotOpen(e)
			}
			c.deleteFromAEL(e)
		}
		return nextE, nil
	}

	maxPair := getMaximaPair(e)
	if maxPair == nil {
		return nextE, nil // ie the maxima pair is horizontal
	}

	// Only non-horizontal maxima here. Process any edges between the
	// maxima pair.
	for nextE != maxPair {
		if err := c.intersectEdges(e, nextE, e.top); err != nil {
			return nil, err
		}
		c.swapPositionsInAEL(e, nextE)
		nextE = e.nextInAEL
	}

	if isOpenEdge(e) {
		if isHotEdge(e) {
			if err := c.addLocalMaxPoly(e, maxPair, e.top); err != nil {
				return nil, err
			}
		}
		c.deleteFromAEL(maxPair)
		c.deleteFromAEL(e)
		if prevE != nil {
			return prevE.nextInAEL, nil
		}
		return c.actives, nil
	}

	// Here e.nextInAEL == maxPair.
	if isHotEdge(e) {
		if err := c.addLocalMaxPoly(e, maxPair, e.top); err != nil {
			return nil, err
		}
	}

	c.deleteFromAEL(e)
	c.deleteFromAEL(maxPair)
	if prevE != nil {
		return prevE.nextInAEL, nil
	}
	return c.actives, nil
}

//===============================================================================
// Execution
//===============================================================================

func (c *Clipper) executeInternal(ct ClipType, ft FillRule) error {
	if c.locked {
		return ErrExecuteLocked
	}
	c.locked = true
	defer func() { c.locked = false }()

	c.fillrule = ft
	c.cliptype = ct
	c.reset()

	y, ok := c.popScanline()
	if !ok {
		return nil // no input paths with usable geometry
	}

	for {
		if err := c.insertLocalMinimaIntoAEL(y); err != nil {
			return err
		}
		for {
			e, ok := c.popHorz()
			if !ok {
				break
			}
			if err := c.processHorizontal(e); err != nil {
				return err
			}
		}
		y, ok = c.popScanline()
		if !ok {
			break // y new top of scanbeam
		}
		if err := c.processIntersections(y); err != nil {
			return err
		}
		c.sel = nil // c.sel reused to flag horizontals
		if err := c.doTopOfScanbeam(y); err != nil {
			return err
		}
	}
	return nil
}

// Execute performs the clipping operation and stores the closed
// results in closed and any open results in open. Either output may be
// nil, in which case those results are discarded. The input paths are
// retained, so Execute may be called again with a different ClipType
// or FillRule.
func (c *Clipper) Execute(clipType ClipType, fillRule FillRule, closed, open *Paths) error {
	if closed != nil {
		*closed = nil
	}
	if open != nil {
		*open = nil
	}
	err := c.executeInternal(clipType, fillRule)
	if err == ErrExecuteLocked {
		return err
	}
	if err == nil {
		c.buildResult(closed, open)
	}
	c.cleanUp()
	return err
}

// ExecuteTree performs the clipping operation and stores the closed
// results as a polygon hierarchy in tree, with any open results in
// open. A nil open discards open results.
func (c *Clipper) ExecuteTree(clipType ClipType, fillRule FillRule, tree *PolyTree, open *Paths) error {
	tree.Clear()
	if open != nil {
		*open = nil
	}
	err := c.executeInternal(clipType, fillRule)
	if err == ErrExecuteLocked {
		return err
	}
	if err == nil {
		c.buildResultTree(tree, open)
	}
	c.cleanUp()
	return err
}

//===============================================================================
// Result construction
//===============================================================================

// extractPath converts an outrec's point ring into a Path, reporting
// whether the ring is open and whether it has enough points to keep.
// The ring is walked backward from the end side, which restores the
// orientation the points were produced in.
func extractPath(outrec *outRec) (path Path, isOpen, ok bool) {
	if outrec.pts == nil {
		return nil, false, false
	}
	isOpen = outrec.flags&outRecOpen != 0
	op := outrec.pts.prev
	cnt := pointCount(op)
	if op.pt == outrec.pts.pt { // duplicate start and end points
		cnt--
	}
	if cnt < 2 || (!isOpen && cnt == 2) {
		return nil, isOpen, false
	}
	path = make(Path, 0, cnt)
	for i := 0; i < cnt; i++ {
		path = append(path, op.pt)
		op = op.prev
	}
	return path, isOpen, true
}

func (c *Clipper) buildResult(closed, open *Paths) {
	for _, outrec := range c.outrecList {
		path, isOpen, ok := extractPath(outrec)
		if !ok {
			continue
		}
		if isOpen {
			if open != nil {
				*open = append(*open, path)
			}
		} else if closed != nil {
			*closed = append(*closed, path)
		}
	}
}

func (c *Clipper) buildResultTree(tree *PolyTree, open *Paths) {
	for _, outrec := range c.outrecList {
		path, isOpen, ok := extractPath(outrec)
		if !ok {
			continue
		}
		if isOpen {
			if open != nil {
				*open = append(*open, path)
			}
			continue
		}
		// Outrecs are created in order, so owners precede their
		// children in the list.
		if outrec.owner != nil && outrec.owner.polypath != nil {
			outrec.polypath = outrec.owner.polypath.AddChild(path)
		} else {
			outrec.polypath = tree.AddChild(path)
		}
	}
}
