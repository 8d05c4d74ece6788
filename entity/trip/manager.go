package trip

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/utils/input"
)

// Trip 行程记录
// 功能：一次出行在登记后的完整描述：出发时间、起点端点与腿序列。
// 腿序列在生成时就完整描述行程的计划行进方式，
// 但部分腿（如用哪辆停着的车）留到仿真执行时才解析
type Trip struct {
	ID            int32
	PersonID      int32
	DepartureTime float64
	Origin        entity.TripEndpoint
	Legs          []entity.TripLeg
	Started       bool
}

func (t *Trip) String() string {
	return fmt.Sprintf("Trip{id=%d, person=%d, t=%.1f, legs=%d}", t.ID, t.PersonID, t.DepartureTime, len(t.Legs))
}

// TripManager 行程管理器
// 功能：持有人员身份注册表（行人/车辆ID归这里所有），
// 按登记顺序分配行程ID，保存行程记录
type TripManager struct {
	ctx entity.ITaskContext

	persons map[int32]*entity.PersonRecord

	trips      map[int32]*Trip
	nextTripID int32
	nextBikeID int32
}

// NewManager 创建行程管理器实例
func NewManager(ctx entity.ITaskContext) *TripManager {
	return &TripManager{
		ctx:        ctx,
		persons:    make(map[int32]*entity.PersonRecord),
		trips:      make(map[int32]*Trip),
		nextTripID: 0,
		nextBikeID: 20000000,
	}
}

// Init 初始化人员注册表
func (m *TripManager) Init(pbs []*input.Person) {
	m.persons = lo.SliceToMap(pbs, func(pb *input.Person) (int32, *entity.PersonRecord) {
		r := &entity.PersonRecord{
			ID:     pb.ID,
			PedID:  pb.Ped,
			CarID:  entity.NullID,
			BikeID: entity.NullID,
		}
		if pb.Car != nil {
			r.CarID = *pb.Car
		}
		if pb.Bike != nil {
			r.BikeID = *pb.Bike
		}
		return pb.ID, r
	})
}

// GetPerson 根据ID获取人员记录，如果不存在则panic
func (m *TripManager) GetPerson(id int32) *entity.PersonRecord {
	if p, ok := m.persons[id]; !ok {
		log.Panicf("no id %d in person data", id)
		return nil
	} else {
		return p
	}
}

// GetPersonOrError 根据ID获取人员记录，如果不存在则返回错误
func (m *TripManager) GetPersonOrError(id int32) (*entity.PersonRecord, error) {
	if p, ok := m.persons[id]; !ok {
		return nil, fmt.Errorf("no id %d in person data", id)
	} else {
		return p, nil
	}
}

// NewTrip 登记新行程
// 返回：行程ID，严格按登记顺序递增，因此批量生成的顺序
// 决定了全部行程ID的取值
func (m *TripManager) NewTrip(personID int32, departureTime float64, origin entity.TripEndpoint, legs []entity.TripLeg) int32 {
	id := m.nextTripID
	m.nextTripID++
	m.trips[id] = &Trip{
		ID:            id,
		PersonID:      personID,
		DepartureTime: departureTime,
		Origin:        origin,
		Legs:          legs,
	}
	return id
}

// Get 根据ID获取行程记录，如果不存在则panic
func (m *TripManager) Get(tripID int32) *Trip {
	if t, ok := m.trips[tripID]; !ok {
		log.Panicf("no id %d in trip data", tripID)
		return nil
	} else {
		return t
	}
}

// Len 已登记的行程数
func (m *TripManager) Len() int {
	return len(m.trips)
}

// NextBikeID 分配一个新的自行车ID
// 说明：自行车按需生成、一人可多辆，不走人员注册表
func (m *TripManager) NextBikeID() int32 {
	id := m.nextBikeID
	m.nextBikeID++
	return id
}

// StartTrip 标记行程开始（由调度器的StartTrip指令触发）
func (m *TripManager) StartTrip(tripID int32) {
	t := m.Get(tripID)
	if t.Started {
		log.Panicf("trip %d started twice", tripID)
	}
	t.Started = true
	m.ctx.Metrics().TripsStarted.Inc()
}
