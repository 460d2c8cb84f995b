package statsqueue

// DigestJob computes and publishes the digest of one club.
type DigestJob struct {
	ClubID string `json:"club_id"`
}

// Kind returns the job type identifier for River
func (DigestJob) Kind() string { return "stats_digest" }

// DigestSweepJob fans out one DigestJob per club with recorded rounds. It is
// inserted periodically.
type DigestSweepJob struct{}

// Kind returns the job type identifier for River
func (DigestSweepJob) Kind() string { return "stats_digest_sweep" }
