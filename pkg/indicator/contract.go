package indicator

import (
	"errors"
	"fmt"
)

// 契约违例哨兵错误，可通过 errors.Is 判断
var (
	ErrInvalidPageCount = errors.New("indicator: page count must be >= 1")
	ErrInvalidDotCount  = errors.New("indicator: dot count must be >= 1")
)

// ContractError 描述一次输入契约违例
//
// 核心计算不返回错误，非法输入会被就地修正（例如 fraction 被限制在合法范围内）。
// 调试构建或测试可以调用 MustValid 在入口处快速失败。
type ContractError struct {
	Err   error
	Value int
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%v (got %d)", e.Err, e.Value)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// Validate 检查页数和圆点数是否满足前置条件
func Validate(pageCount, dotCount int) error {
	if pageCount < 1 {
		return &ContractError{Err: ErrInvalidPageCount, Value: pageCount}
	}
	if dotCount < 1 {
		return &ContractError{Err: ErrInvalidDotCount, Value: dotCount}
	}
	return nil
}

// MustValid 与 Validate 相同，但违例时 panic
func MustValid(pageCount, dotCount int) {
	if err := Validate(pageCount, dotCount); err != nil {
		panic(err)
	}
}
