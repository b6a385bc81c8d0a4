package tween

import (
	"math"
	"strings"
)

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值。
// 名称采用 GSAP 风格的标识符（"power3.inOut" 等），便于直接写在配置里。
//
// 参考：https://easings.net/ 、https://gsap.com/docs/v3/Eases

// Func 缓动函数
type Func func(t float64) float64

// EaseLinear 线性缓动（匀速）
func EaseLinear(t float64) float64 {
	return t
}

// EaseInQuad 二次方缓入 f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad 二次方缓出 f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInOutQuad 二次方缓入缓出
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// EaseInCubic 三次方缓入 f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseOutCubic 三次方缓出 f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseInQuart 四次方缓入
func EaseInQuart(t float64) float64 {
	return t * t * t * t
}

// EaseOutQuart 四次方缓出
func EaseOutQuart(t float64) float64 {
	return 1 - math.Pow(1-t, 4)
}

// EaseInOutQuart 四次方缓入缓出（GSAP 的 power3.inOut）
//
//	t < 0.5: f(t) = 8t⁴
//	t >= 0.5: f(t) = 1 - (-2t + 2)⁴ / 2
func EaseInOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 4)/2
}

// EaseInQuint 五次方缓入
func EaseInQuint(t float64) float64 {
	return t * t * t * t * t
}

// EaseOutQuint 五次方缓出
func EaseOutQuint(t float64) float64 {
	return 1 - math.Pow(1-t, 5)
}

// EaseInOutQuint 五次方缓入缓出
func EaseInOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 5)/2
}

// EaseInOutSine 正弦缓入缓出
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// EaseOutExpo 指数缓出 f(t) = 1 - 2^(-10t)
func EaseOutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// GSAP 的 powerN 对应 N+1 次多项式：power1=quad, power2=cubic, power3=quart, power4=quint
var registry = map[string]Func{
	"none":         EaseLinear,
	"linear":       EaseLinear,
	"power0":       EaseLinear,
	"power1.in":    EaseInQuad,
	"power1.out":   EaseOutQuad,
	"power1.inout": EaseInOutQuad,
	"power2.in":    EaseInCubic,
	"power2.out":   EaseOutCubic,
	"power2.inout": EaseInOutCubic,
	"power3.in":    EaseInQuart,
	"power3.out":   EaseOutQuart,
	"power3.inout": EaseInOutQuart,
	"power4.in":    EaseInQuint,
	"power4.out":   EaseOutQuint,
	"power4.inout": EaseInOutQuint,
	"sine.inout":   EaseInOutSine,
	"expo.out":     EaseOutExpo,
}

// Lookup 按标识符查找缓动函数（大小写不敏感）
// 只写 "power3" 时按 GSAP 约定视为 ".out"
func Lookup(name string) (Func, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if fn, ok := registry[key]; ok {
		return fn, true
	}
	if fn, ok := registry[key+".out"]; ok {
		return fn, true
	}
	return nil, false
}
