package progression

import "time"

// Date 去掉时间部分的日历日，连续签到只比较日期
type Date struct {
	year  int
	month time.Month
	day   int
}

// DateOf 取 t 所在时区的日历日
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// Next 返回下一个日历日
func (d Date) Next() Date {
	return DateOf(d.Time().AddDate(0, 0, 1))
}

// Time 返回当日零点（UTC）
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}
