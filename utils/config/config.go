package config

// RuntimeConfig 运行时配置
// 功能：将YAML配置转换为运行时可用的配置对象，并补全默认值
type RuntimeConfig struct {
	All Config  // 全部配置
	C   Control // 全局控制配置
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 说明：随机场景未指定模式权重时使用均匀权重
func NewRuntimeConfig(config Config) *RuntimeConfig {
	rc := &RuntimeConfig{}

	rc.All = config
	rc.C = config.Control
	if r := rc.All.Scenario.Random; r != nil && len(r.ModeWeights) == 0 {
		r.ModeWeights = []float64{1, 1, 1, 1}
	}

	return rc
}
