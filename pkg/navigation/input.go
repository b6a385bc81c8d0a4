package navigation

import "time"

// DefaultWheelDebounce 滚轮手势静止窗口
const DefaultWheelDebounce = 50 * time.Millisecond

// Clock 时间源，测试中可替换为可控时钟
type Clock interface {
	Now() time.Time
}

// SystemClock 使用系统时间
type SystemClock struct{}

// Now 返回当前系统时间
func (SystemClock) Now() time.Time { return time.Now() }

// Requester 是输入适配器依赖的导航操作子集
type Requester interface {
	RequestSection(target int)
	RequestNext()
	RequestPrevious()
	IsTransitioning() bool
}

// WheelAdapter 滚轮/触控板输入的防抖适配器
//
// 每个滚轮事件都会重置静止窗口；窗口内没有新事件后，按最后一个事件的符号
// 触发至多一次 RequestNext（delta > 0）或 RequestPrevious（delta < 0）。
// 过渡进行中收到的事件直接丢弃。
type WheelAdapter struct {
	nav      Requester
	clock    Clock
	debounce time.Duration

	pending   bool
	lastDelta float64
	lastEvent time.Time
}

// NewWheelAdapter 创建滚轮适配器，debounce <= 0 时使用 DefaultWheelDebounce
func NewWheelAdapter(nav Requester, clock Clock, debounce time.Duration) *WheelAdapter {
	if clock == nil {
		clock = SystemClock{}
	}
	if debounce <= 0 {
		debounce = DefaultWheelDebounce
	}
	return &WheelAdapter{
		nav:      nav,
		clock:    clock,
		debounce: debounce,
	}
}

// OnWheel 记录一个滚轮事件
// deltaY 采用浏览器约定：正值表示向下滚动（下一个分区）
func (w *WheelAdapter) OnWheel(deltaY float64) {
	if w.nav.IsTransitioning() {
		return
	}
	w.pending = true
	w.lastDelta = deltaY
	w.lastEvent = w.clock.Now()
}

// Update 每帧调用，静止窗口结束后触发一次导航请求
// 返回本次是否发出了请求
func (w *WheelAdapter) Update() bool {
	if !w.pending {
		return false
	}
	if w.clock.Now().Sub(w.lastEvent) < w.debounce {
		return false
	}

	w.pending = false
	switch {
	case w.lastDelta > 0:
		w.nav.RequestNext()
		return true
	case w.lastDelta < 0:
		w.nav.RequestPrevious()
		return true
	}
	return false
}

// Pending 是否有尚未结算的手势
func (w *WheelAdapter) Pending() bool {
	return w.pending
}

// 默认按键名
const (
	KeyArrowDown = "ArrowDown"
	KeyArrowUp   = "ArrowUp"
)

// KeyAdapter 离散按键适配器，不做防抖
type KeyAdapter struct {
	nav  Requester
	next map[string]bool
	prev map[string]bool
}

// NewKeyAdapter 创建按键适配器；nextKeys/prevKeys 为空时使用方向键
func NewKeyAdapter(nav Requester, nextKeys, prevKeys []string) *KeyAdapter {
	if len(nextKeys) == 0 {
		nextKeys = []string{KeyArrowDown}
	}
	if len(prevKeys) == 0 {
		prevKeys = []string{KeyArrowUp}
	}

	k := &KeyAdapter{
		nav:  nav,
		next: make(map[string]bool, len(nextKeys)),
		prev: make(map[string]bool, len(prevKeys)),
	}
	for _, key := range nextKeys {
		k.next[key] = true
	}
	for _, key := range prevKeys {
		k.prev[key] = true
	}
	return k
}

// OnKey 处理一次按键，返回按键是否被映射
func (k *KeyAdapter) OnKey(key string) bool {
	switch {
	case k.next[key]:
		k.nav.RequestNext()
		return true
	case k.prev[key]:
		k.nav.RequestPrevious()
		return true
	}
	return false
}

// Activate 链接/按钮点击，携带显式的目标分区索引
func Activate(nav Requester, index int) {
	nav.RequestSection(index)
}
