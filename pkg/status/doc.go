// Package status accumulates validation and business errors instead of
// failing on the first one.
//
// A Handler is created per logical operation, collects zero or more Entry
// values (directly, from validation results, or by combining the statuses of
// sub-operations) and is handed back to the caller, who inspects IsValid,
// Errors and Message.
//
//	func Check(s string) *status.Handler[status.Unit] {
//		st := status.New(status.WithHeader("Check"))
//		if s == "" {
//			return st.AddError("input must not be empty", "s")
//		}
//		return st.SetMessage("All went well")
//	}
//
// Headers namespace errors. An error added to a status with header "Outer"
// renders as "Outer: message"; combining a status whose errors carry the
// header "Inner" into it renders "Outer>Inner: message".
//
// A Handler is not safe for concurrent mutation. Give each goroutine its own
// status and Combine the results once the goroutines are done.
package status
