package container

import "container/heap"

// item 优先队列中单个元素
// 说明：除优先级外记录插入序号，相同优先级按插入先后排序
type item[T any] struct {
	Value    T       // 元素的值（任意类型）
	Priority float64 // 元素在队列中的优先级（越小越优先）
	seq      uint64  // 插入序号，用于相同优先级的稳定排序
	index    int     // 项在堆中的索引，由heap.Interface方法维护
}

// priorityQueue 优先队列实现了 heap.Interface 并保存了元素
type priorityQueue[T any] []*item[T]

func (pq priorityQueue[T]) Len() int { return len(pq) }

// Less 比较两个元素的优先级
// 说明：使用小于号，Pop返回最低优先级的项（最小堆）；
// 优先级相同时序号小者优先，保证FIFO
func (pq priorityQueue[T]) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	return pq[i].seq < pq[j].seq
}

func (pq priorityQueue[T]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue[T]) Push(x any) {
	n := len(*pq)
	item := x.(*item[T])
	item.index = n
	*pq = append(*pq, item)
}

func (pq *priorityQueue[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // 避免内存泄漏
	item.index = -1 // 为了安全起见
	*pq = old[0 : n-1]
	return item
}

// PriorityQueue 稳定优先队列
// 功能：基于标准库heap的泛型优先队列，
// 相同优先级的元素严格按加入顺序弹出
type PriorityQueue[T any] struct {
	queue   priorityQueue[T] // 内部优先队列实现
	nextSeq uint64           // 下一个插入序号
}

// NewPriorityQueue 创建优先队列
func NewPriorityQueue[T any]() *PriorityQueue[T] {
	return &PriorityQueue[T]{queue: make(priorityQueue[T], 0)}
}

// Len 获取当前队列长度
func (q *PriorityQueue[T]) Len() int {
	return len(q.queue)
}

// First 获取第一个元素（优先级数值最小的元素），不移除
func (q *PriorityQueue[T]) First() (value T, priority float64) {
	return q.queue[0].Value, q.queue[0].Priority
}

// HeapPush 加入元素并维护堆结构
func (q *PriorityQueue[T]) HeapPush(value T, priority float64) {
	heap.Push(&q.queue, &item[T]{
		Value:    value,
		Priority: priority,
		seq:      q.nextSeq,
	})
	q.nextSeq++
}

// HeapPop 弹出优先级最高的元素并维护堆结构
func (q *PriorityQueue[T]) HeapPop() (value T, priority float64) {
	item := heap.Pop(&q.queue).(*item[T])
	return item.Value, item.Priority
}
