package router

import (
	"git.fiblab.net/general/common/v2/mathutil"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/utils/container"
)

// LocalRouter 进程内导航服务
// 功能：在车道拓扑上做Dijkstra最短路，支持按通行约束过滤车道。
// 行人在人行道上双向通行，车辆沿行车道的后继方向单向通行。
// 只读路网，Pathfind可被并行调用
type LocalRouter struct {
	lanes map[int32]entity.ILane
}

// New 创建导航服务实例
func New() *LocalRouter {
	return &LocalRouter{lanes: make(map[int32]entity.ILane)}
}

// Init 初始化车道索引
func (r *LocalRouter) Init(lanes []entity.ILane) {
	r.lanes = lo.SliceToMap(lanes, func(l entity.ILane) (int32, entity.ILane) {
		return l.ID(), l
	})
}

// allowed 车道是否允许该通行约束
func allowed(l entity.ILane, constraints entity.PathConstraints) bool {
	if constraints == entity.ConstraintPedestrian {
		return l.Type() == entity.LaneTypeWalking
	}
	return l.Type() == entity.LaneTypeDriving
}

func (r *LocalRouter) get(id int32) entity.ILane {
	l, ok := r.lanes[id]
	if !ok {
		log.Panicf("no id %d in lane data", id)
	}
	return l
}

// neighbors 按约束取可通行的相邻车道
// 行人可逆行，前驱车道也算相邻
func (r *LocalRouter) neighbors(l entity.ILane, constraints entity.PathConstraints) []int32 {
	ids := make([]int32, 0, len(l.SuccessorIDs()))
	for _, id := range l.SuccessorIDs() {
		if next, ok := r.lanes[id]; ok && allowed(next, constraints) {
			ids = append(ids, id)
		}
	}
	if constraints == entity.ConstraintPedestrian {
		for _, id := range l.PredecessorIDs() {
			if next, ok := r.lanes[id]; ok && allowed(next, constraints) {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// Pathfind 求解导航请求
// 功能：返回从起点位置到终点位置的车道ID序列与总距离，
// 无可行路径时返回nil。距离按车道中心线长度累加，
// 起终点车道只计入部分长度
func (r *LocalRouter) Pathfind(req entity.PathRequest) *entity.Path {
	start := r.get(req.Start.LaneID)
	end := r.get(req.End.LaneID)
	if !allowed(start, req.Constraints) || !allowed(end, req.Constraints) {
		log.Warnf("request %v crosses lane types; no route", req)
		return nil
	}

	// 同车道直达
	if req.Start.LaneID == req.End.LaneID {
		if req.Constraints == entity.ConstraintPedestrian {
			return &entity.Path{
				LaneIDs:  []int32{req.Start.LaneID},
				Distance: mathutil.Abs(req.End.S - req.Start.S),
			}
		}
		if req.End.S >= req.Start.S {
			return &entity.Path{
				LaneIDs:  []int32{req.Start.LaneID},
				Distance: req.End.S - req.Start.S,
			}
		}
		// 终点在车后方，只能绕环回到本车道，走一般搜索
	}

	// dist[l]是从起点位置走到车道l入口的最短距离
	dist := map[int32]float64{start.ID(): 0}
	prev := make(map[int32]int32)
	visited := make(map[int32]bool)
	pq := container.NewPriorityQueue[int32]()
	pq.HeapPush(start.ID(), 0)

	best := mathutil.INF
	var bestPrev int32
	found := false

	for pq.Len() > 0 {
		curID, d := pq.HeapPop()
		if visited[curID] {
			continue
		}
		visited[curID] = true
		if d >= best {
			break
		}
		cur := r.get(curID)
		// 离开当前车道的代价：起点车道从起点位置算起
		exit := d + cur.Length()
		if curID == req.Start.LaneID {
			exit = d + cur.Length() - req.Start.S
		}
		for _, nxtID := range r.neighbors(cur, req.Constraints) {
			if nxtID == req.End.LaneID {
				if total := exit + req.End.S; total < best {
					best = total
					bestPrev = curID
					found = true
				}
			}
			if visited[nxtID] {
				continue
			}
			if old, ok := dist[nxtID]; !ok || exit < old {
				dist[nxtID] = exit
				prev[nxtID] = curID
				pq.HeapPush(nxtID, exit)
			}
		}
	}
	if !found {
		return nil
	}

	ids := []int32{req.End.LaneID}
	for cur := bestPrev; ; cur = prev[cur] {
		ids = append(ids, cur)
		if cur == start.ID() {
			break
		}
	}
	lo.Reverse(ids)
	return &entity.Path{LaneIDs: ids, Distance: best}
}
