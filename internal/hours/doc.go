// Package hours normalizes LibCal Hours schedule entries into tabular
// open/close windows.
//
// # Data conventions
//
// The LibCal Hours API reports one entry per location per date with a
// categorical status:
//
//	open     structured hour ranges, each with raw "from"/"to" clock text
//	         ("9:00am", "5:00pm"); a day may carry several sub-ranges
//	text     a free-text description ("Open 9am - 5pm", "By appointment")
//	24hours  open the full day
//	closed   closed the full day
//
// Clock times are 12-hour tokens: hour 1-12, optional :minutes, am/pm suffix
// in either case. A close time of "12:00AM" means midnight at the end of the
// given date, i.e. the following calendar day; see [ExtractWindow].
//
// All instants are naive local values from the source. No timezone
// conversion is performed.
//
// # Degradation policy
//
// A single malformed entry never aborts a run. Entries whose window cannot
// be recovered still produce an output row with blank open/close fields and
// zero minutes, plus an operator-visible diagnostic. Unrecognized statuses
// produce a diagnostic and no row. See [Builder].
package hours
