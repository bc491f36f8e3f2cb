package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid        = errors.New("参数错误")
	ErrUserNotFound        = errors.New("用户不存在")
	ErrUserExist           = errors.New("邮箱或用户名已被注册")
	ErrPasswordIncorrect   = errors.New("邮箱或密码错误")
	ErrHabitNotFound       = errors.New("习惯不存在")
	ErrHabitAlreadyTracked = errors.New("习惯已在打卡列表中")
	ErrHabitNotTracked     = errors.New("习惯不在打卡列表中")
	ErrStatusInvalid       = errors.New("打卡状态不合法")
	ErrDateInvalid         = errors.New("日期格式不合法，应为 YYYY-MM-DD")
	ErrFrequencyInvalid    = errors.New("重复频率不合法")
	UnExpectedError        = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        BadRequest,
	ErrUserNotFound:        NotFound,
	ErrUserExist:           Conflict,
	ErrPasswordIncorrect:   Unauthorized,
	ErrHabitNotFound:       NotFound,
	ErrHabitAlreadyTracked: Conflict,
	ErrHabitNotTracked:     NotFound,
	ErrStatusInvalid:       BadRequest,
	ErrDateInvalid:         BadRequest,
	ErrFrequencyInvalid:    BadRequest,
	UnExpectedError:        InternalServerError,
}
