// meta/meta.go
package meta

import "time"

// Episodes defines the number of search episodes per move.
const Episodes = 5000

// Games defines the number of self-play games in a training run.
const Games = 500

// Workers defines how many self-play games run at once.
const Workers = 4

// ReportEvery defines how often, in games, the running win rate is logged.
const ReportEvery = 10

// Duration is the default wall-clock bound per move, zero meaning unbounded.
const Duration time.Duration = 0

// RecordPath is where the win/loss/draw record is kept between runs.
const RecordPath = "ai_record.yaml"
