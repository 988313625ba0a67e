package media

import (
	"strconv"
	"strings"
)

// parseRange разбирает спецификацию "bytes=<start>-<end>", где <end>
// может отсутствовать (тогда end = size-1). ok=false значит
// "спецификация не распознана": вызывающая сторона отдаёт полный
// контент, а не ошибку — наивные клиенты шлют кривые Range, и ломать их
// нельзя.
//
// Поддерживается только одиночный прямой диапазон. Суффиксные
// ("bytes=-500") и составные ("bytes=0-10,20-30") формы не проходят
// разбор целых чисел и уходят в общий фолбэк.
func parseRange(spec string, size int64) (start, end int64, ok bool) {
	rest, found := strings.CutPrefix(spec, "bytes=")
	if !found {
		return 0, 0, false
	}
	first, last, found := strings.Cut(rest, "-")
	if !found {
		return 0, 0, false
	}

	start, err := strconv.ParseInt(first, 10, 64)
	if err != nil || start < 0 {
		return 0, 0, false
	}
	if last == "" {
		return start, size - 1, true
	}
	end, err = strconv.ParseInt(last, 10, 64)
	if err != nil || end < 0 {
		return 0, 0, false
	}
	return start, end, true
}
