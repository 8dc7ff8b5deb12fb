package parser

import "strings"

// ErrorList は構文解析エラーをまとめて一つのerrorとして扱うための型
type ErrorList []string

func (e ErrorList) Error() string {
	switch len(e) {
	case 0:
		return "no parse errors"
	case 1:
		return e[0]
	}
	return strings.Join(e, "\n")
}
