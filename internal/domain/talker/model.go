package talker

// Talk is the rated presentation attached to a talker.
type Talk struct {
	WatchedAt string `json:"watchedAt" doc:"Data no formato dd/mm/aaaa"`
	Rate      int    `json:"rate" doc:"Nota de 1 a 5"`
}

// Talker is a speaker profile. IDs are positive, unique within the
// collection and assigned sequentially at creation time.
type Talker struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
	Talk Talk   `json:"talk"`
}
