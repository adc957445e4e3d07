package common

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "PRESENT"
	StatusAbsent  AttendanceStatus = "ABSENT"
	StatusHalfDay AttendanceStatus = "HALF_DAY"
	StatusNoPay   AttendanceStatus = "NO_PAY"
)

// AttendanceStatuses lists every status in the order the dashboards group by.
func AttendanceStatuses() []AttendanceStatus {
	return []AttendanceStatus{StatusPresent, StatusNoPay, StatusHalfDay, StatusAbsent}
}

func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusNoPay:
		return true
	}
	return false
}
