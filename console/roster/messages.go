package roster

import (
	"errors"

	v1 "staffdesk.com/staffdesk/staffdesk/v1"
)

// User-visible messages, one set per operation so a fetch failure never
// clobbers an unrelated edit or delete message.

const (
	msgLoginRequired = "Authentication required. Please login again."
	msgEnterID       = "Please enter an employee ID."
	msgSelectDept    = "Please select a department."
	msgIDNotFound    = "Employee not found with the provided ID."
	msgDeptNotFound  = "No employees found in the selected department."

	msgFetchForbidden = "Access denied. You do not have permission to view employees."
	msgFetchFailed    = "Failed to load employees. Please try again."
	msgFetchNetwork   = "Failed to load employees. Please check your connection."

	msgDeleteForbidden = "Access denied. You do not have permission to delete employees."
	msgDeleteNotFound  = "Employee not found."
	msgDeleteFailed    = "Failed to delete employee. Please try again."
	msgDeleteNetwork   = "Failed to delete employee. Please check your connection."

	msgUpdateFailed  = "Failed to update employee. Please try again."
	msgUpdateNetwork = "Network error updating employee. Please check your connection."

	msgPasswordBadCurrent = "Invalid password. Please check your current password."
	msgPasswordUnauth     = "Unauthorized. Please check your credentials."
	msgPasswordForbidden  = "You do not have permission to change this password."
	msgPasswordNotFound   = "Employee not found."
	msgPasswordFailed     = "Failed to update password."
	msgPasswordNetwork    = "Network error updating password. Please check your connection."

	msgDeptUpdateFailed = "Failed to update department. Please try again."

	msgNoAttendance     = "No attendance found for this employee and date."
	msgAttendanceFailed = "Failed to fetch employee attendance."
)

func fetchMessage(err error) string {
	switch {
	case errors.Is(err, v1.ErrUnauthenticated):
		return msgLoginRequired
	case errors.Is(err, v1.ErrForbidden):
		return msgFetchForbidden
	case errors.Is(err, v1.ErrNetwork):
		return msgFetchNetwork
	default:
		return msgFetchFailed
	}
}

func deleteMessage(err error) string {
	switch {
	case errors.Is(err, v1.ErrUnauthenticated):
		return msgLoginRequired
	case errors.Is(err, v1.ErrForbidden):
		return msgDeleteForbidden
	case errors.Is(err, v1.ErrNotFound):
		return msgDeleteNotFound
	case errors.Is(err, v1.ErrNetwork):
		return msgDeleteNetwork
	default:
		return msgDeleteFailed
	}
}

func updateMessage(err error) string {
	switch {
	case errors.Is(err, v1.ErrUnauthenticated):
		return msgLoginRequired
	case errors.Is(err, v1.ErrNetwork):
		return msgUpdateNetwork
	default:
		return msgUpdateFailed
	}
}

func passwordMessage(err error) string {
	switch {
	case errors.Is(err, v1.ErrInvalidArgument):
		return msgPasswordBadCurrent
	case errors.Is(err, v1.ErrUnauthenticated):
		return msgPasswordUnauth
	case errors.Is(err, v1.ErrForbidden):
		return msgPasswordForbidden
	case errors.Is(err, v1.ErrNotFound):
		return msgPasswordNotFound
	case errors.Is(err, v1.ErrNetwork):
		return msgPasswordNetwork
	default:
		return msgPasswordFailed
	}
}
