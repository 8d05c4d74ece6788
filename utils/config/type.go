package config

// Input 指定模拟器所有输入数据的配置项
// 功能：定义路网与人员数据的文件来源（均为YAML文件）
type Input struct {
	Map     string `yaml:"map"`     // 路网文件路径
	Persons string `yaml:"persons"` // 人员文件路径
}

// ControlStep 指定模拟器模拟时间范围和间隔的配置项
type ControlStep struct {
	Start    int32   `yaml:"start"`    // 开始步数
	Total    int32   `yaml:"total"`    // 总步数
	Interval float64 `yaml:"interval"` // 每步的时间间隔（秒）
}

// Control 模拟器控制配置
type Control struct {
	Step ControlStep `yaml:"step"`
}

// ScenarioTrip 场景中的一条显式出行意图
// Mode可选项：car_appearing/using_parked_car/just_walking/using_bike/using_transit
type ScenarioTrip struct {
	PersonID      int32   `yaml:"person_id"`
	DepartureTime float64 `yaml:"departure_time"` // 出发时间（秒）
	Mode          string  `yaml:"mode"`

	// 起点：建筑ID或(车道ID, S)二选一
	StartBuilding *int32   `yaml:"start_building,omitempty"`
	StartLane     *int32   `yaml:"start_lane,omitempty"`
	StartS        *float64 `yaml:"start_s,omitempty"`

	// 终点：建筑ID或边界(路口ID+车道ID)二选一
	EndBuilding *int32 `yaml:"end_building,omitempty"`
	EndJunction *int32 `yaml:"end_junction,omitempty"`
	EndLane     *int32 `yaml:"end_lane,omitempty"`

	// 公交出行专用
	Route      *int32 `yaml:"route,omitempty"`
	BoardStop  *int32 `yaml:"board_stop,omitempty"`
	AlightStop *int32 `yaml:"alight_stop,omitempty"`
}

// ScenarioRandom 随机出行生成配置
type ScenarioRandom struct {
	Count       int32     `yaml:"count"`                  // 生成条数
	Seed        uint64    `yaml:"seed"`                   // 随机种子
	StartTime   float64   `yaml:"start_time"`             // 出发时间窗起点（秒）
	EndTime     float64   `yaml:"end_time"`               // 出发时间窗终点（秒）
	ModeWeights []float64 `yaml:"mode_weights,omitempty"` // 模式权重：步行/骑行/开车/公交
}

// Scenario 场景配置：显式意图列表加可选的随机生成
type Scenario struct {
	Trips  []ScenarioTrip  `yaml:"trips,omitempty"`
	Random *ScenarioRandom `yaml:"random,omitempty"`
}

// Metrics 指标输出配置
type Metrics struct {
	Listen string `yaml:"listen,omitempty"` // promhttp监听地址，为空则不启动
}

// Config YAML配置文件的根结构
type Config struct {
	Input    Input    `yaml:"input"`    // 输入
	Control  Control  `yaml:"control"`  // 模拟过程控制
	Scenario Scenario `yaml:"scenario"` // 出行场景
	Metrics  Metrics  `yaml:"metrics"`  // 指标输出
}
