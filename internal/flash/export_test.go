package flash

import "time"

func (f *Flasher) SetNow(now func() time.Time) {
	f.now = now
}
