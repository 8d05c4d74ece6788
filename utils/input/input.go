// 输入数据加载：从YAML文件读取路网与人员数据。
package input

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/utils/config"
	"gopkg.in/yaml.v2"
)

var log = logrus.WithField("module", "input")

// Lane 车道输入数据
type Lane struct {
	ID            int32       `yaml:"id"`
	Type          string      `yaml:"type"`      // driving|walking
	MaxSpeed      float64     `yaml:"max_speed"` // 限速（米/秒）
	CenterLine    [][]float64 `yaml:"center_line"` // 中心线折线点[[x,y],...]
	StartJunction int32       `yaml:"start_junction"`
	EndJunction   int32       `yaml:"end_junction"`
	Predecessors  []int32     `yaml:"predecessors,omitempty"`
	Successors    []int32     `yaml:"successors,omitempty"`
	// 行车道：邻接人行道ID；人行道：邻接可骑行车道ID
	Sidewalk *int32 `yaml:"sidewalk,omitempty"`
	Driving  *int32 `yaml:"driving,omitempty"`
}

// Building 建筑输入数据：步行门与停车门
type Building struct {
	ID           int32   `yaml:"id"`
	SidewalkLane int32   `yaml:"sidewalk_lane"`
	SidewalkS    float64 `yaml:"sidewalk_s"`
	ParkingLane  int32   `yaml:"parking_lane"`
	ParkingS     float64 `yaml:"parking_s"`
}

// Stop 公交站输入数据
type Stop struct {
	ID   int32   `yaml:"id"`
	Lane int32   `yaml:"lane"`
	S    float64 `yaml:"s"`
}

// Route 公交线路输入数据
type Route struct {
	ID    int32   `yaml:"id"`
	Name  string  `yaml:"name,omitempty"`
	Stops []int32 `yaml:"stops"`
}

// Map 路网输入数据
type Map struct {
	Lanes     []*Lane     `yaml:"lanes"`
	Buildings []*Building `yaml:"buildings,omitempty"`
	Stops     []*Stop     `yaml:"stops,omitempty"`
	Routes    []*Route    `yaml:"routes,omitempty"`
}

// Person 人员输入数据
// Car/Bike为空表示该人没有对应车辆
type Person struct {
	ID        int32   `yaml:"id"`
	Ped       int32   `yaml:"ped"` // 行人身份ID
	Car       *int32  `yaml:"car,omitempty"`
	Bike      *int32  `yaml:"bike,omitempty"`
	WalkSpeed float64 `yaml:"walk_speed"`
}

// Persons 人员输入数据集合
type Persons struct {
	Persons []*Person `yaml:"persons"`
}

// Input 模拟器启动所需的全部输入
type Input struct {
	Map     *Map
	Persons *Persons
}

// Init 加载所有输入数据，任何文件缺失或格式错误直接panic
func Init(c config.Config) *Input {
	res := &Input{
		Map:     &Map{},
		Persons: &Persons{},
	}
	loadYAML(c.Input.Map, res.Map)
	if c.Input.Persons != "" {
		loadYAML(c.Input.Persons, res.Persons)
	}
	return res
}

func loadYAML(path string, out any) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Panicf("input: read %s: %v", path, err)
	}
	if err := yaml.UnmarshalStrict(data, out); err != nil {
		log.Panicf("input: parse %s: %v", path, err)
	}
}
