package components

// 环境动画组件
//
// 参数以"每帧"或"毫秒时间戳的系数"给出，按 ebiten 固定 60 TPS 推进。

// SwayComponent 绕 Z 轴的缓慢摆动：RotationZ = sin(t * Frequency) * Amplitude
type SwayComponent struct {
	Amplitude float64
	Frequency float64 // 每毫秒弧度
}

// GlowPulseComponent 光晕呼吸：opacity = Base + sin(t * Frequency) * Amplitude
type GlowPulseComponent struct {
	Base      float64
	Amplitude float64
	Frequency float64

	// Opacity 当前值，由 AmbientSystem 写入，渲染时读取
	Opacity float64
}

// SpinComponent 绕 Y 轴匀速旋转
type SpinComponent struct {
	RatePerTick float64 // 每帧弧度
}

// BobComponent 上下轻微浮动：y = BaseY + sin(t * Frequency) * Amplitude
type BobComponent struct {
	BaseY     float64
	Amplitude float64
	Frequency float64
}

// PetalDriftComponent 花瓣飘落参数
type PetalDriftComponent struct {
	FallPerTick float64 // 每帧下落距离
	Drift       float64 // 横向摆动幅度（每帧）
	Frequency   float64 // 摆动频率（每毫秒）
	Floor       float32 // 低于此高度时回到 Ceiling
	Ceiling     float32
}
