package autosize

import "math"

// ResolveOverlap 把因 moved 变大而新产生重叠的节点推开，并返回每个节点的累计位移。
//
// 推挤规则：反复检查所有至少有一方已变化的节点对（moved 视为已变化），两者当前
// 相交而原始位置不相交时，把原始位置在后的一方推开：原本在下方的向下推，否则
// 原本在右侧的向右推，推到与对方当前矩形之间恢复原始间距为止。被推开的节点
// 之后继续参与检查，直到没有新的重叠。moved 本身不移动；若某个节点被推进了
// moved 的新矩形，则把该节点推到 moved 的右侧或下方。
//
// 调用时 moved 仍是变更前的几何。负的增量按 0 处理。节点只会向右或向下移动，
// 每个被推开的节点只调用一次 MoveTo。
func ResolveOverlap(moved Node, nodes []Node, d Delta) []Move {
	dw := math.Max(d.Width, 0)
	dh := math.Max(d.Height, 0)
	if dw == 0 && dh == 0 {
		return nil
	}

	rootID := moved.ID()
	start := moved.Bounds()
	grown := start
	grown.Width += dw
	grown.Height += dh

	var (
		ids   = []string{rootID}
		byID  = map[string]Node{}
		orig  = map[string]Rect{rootID: start}
		cur   = map[string]Rect{rootID: grown}
		dirty = map[string]bool{rootID: true}
	)
	var order []string // 首次被推开的顺序
	for _, n := range nodes {
		id := n.ID()
		if _, dup := byID[id]; dup || id == rootID {
			continue
		}
		ids = append(ids, id)
		byID[id] = n
		b := n.Bounds()
		orig[id], cur[id] = b, b
	}

	push := func(id string, to Rect, by string) {
		if !dirty[id] {
			dirty[id] = true
			order = append(order, id)
		}
		from := cur[id]
		cur[id] = to
		logger().Debug("autosize: 推开节点", "node", id, "by", by, "dx", to.X-from.X, "dy", to.Y-from.Y)
	}

	// 每轮至少有一个节点前进，轮数上限只用于防止异常输入导致不终止。
	maxRounds := len(ids)*len(ids) + 1
	for round := 0; ; round++ {
		if round == maxRounds {
			logger().Warn("autosize: 推挤未在上限轮数内收敛", "node", rootID, "rounds", round)
			break
		}
		changed := false
		for _, a := range ids {
			for _, b := range ids {
				if a == b || (!dirty[a] && !dirty[b]) {
					continue
				}
				if !cur[a].Intersects(cur[b]) || orig[a].Intersects(orig[b]) {
					continue
				}
				target, to, ok := separate(a, b, orig, cur)
				if !ok {
					continue
				}
				by := pusherOf(target, a, b)
				if target == rootID {
					target, by = by, rootID
					to = below(cur[target], cur[rootID], 0)
				}
				push(target, to, by)
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	moves := make([]Move, 0, len(order))
	for _, id := range order {
		from, to := orig[id], cur[id]
		byID[id].MoveTo(to.X, to.Y)
		moves = append(moves, Move{NodeID: id, DX: to.X - from.X, DY: to.Y - from.Y})
	}
	if len(moves) == 0 {
		return nil
	}
	return moves
}

// separate 决定 a、b 中哪一个让开以及让开后的位置。原始位置在下方的一方向下推，
// 否则原始位置在右侧的一方向右推，并保持与对方原有的间距。
func separate(a, b string, orig, cur map[string]Rect) (string, Rect, bool) {
	oa, ob := orig[a], orig[b]
	switch {
	case ob.Y >= oa.Bottom():
		return b, below(cur[b], cur[a], ob.Y-oa.Bottom()), true
	case oa.Y >= ob.Bottom():
		return a, below(cur[a], cur[b], oa.Y-ob.Bottom()), true
	case ob.X >= oa.Right():
		return b, rightOf(cur[b], cur[a], ob.X-oa.Right()), true
	case oa.X >= ob.Right():
		return a, rightOf(cur[a], cur[b], oa.X-ob.Right()), true
	}
	return "", Rect{}, false
}

// below 返回 r 移到 anchor 下方、间距为 gap 后的矩形。
func below(r, anchor Rect, gap float64) Rect {
	r.Y = math.Max(r.Y, anchor.Bottom()+gap)
	return r
}

func rightOf(r, anchor Rect, gap float64) Rect {
	r.X = math.Max(r.X, anchor.Right()+gap)
	return r
}

func pusherOf(target, a, b string) string {
	if target == a {
		return b
	}
	return a
}
