package asciiart

import (
	"github.com/salsaflow/make-release/log"
)

// PrintSnoopy greets the release manager.
func PrintSnoopy(logger log.Logger) {
	logger.Println(`
    ,-~~-.___.
   / |  '     \
  (  )         0    Let's release this!
   \_/-, ,----'
      ====           //
     /  \-'~;    /~~~(O)
    /  __/~|   /       |
  =(  _____| (_________|
`)
}

// PrintThumbsUp celebrates a completed checklist.
func PrintThumbsUp(logger log.Logger) {
	// from http://emilights.com/ascii-auto-text-art/expression/217-thumbs-up
	logger.Println(`
        __               __
       (  |             |  )
  _____ \  \           /  /_____
 (____ _)   \   ___   /   (_____)
 (_____ )  _)__(. .)__(_  ( _____)
 (__ ___)   )  |___|  (   (_  ___)
  (_____)__/   /_/\_\  \__(____)`)
}

func PrintGrimReaper(logger log.Logger, msg string) {
	logger.Printf(`
                ( %v )
    ___o .--.  o
   /___| |OO| .
  /'   |_|  |
       (_    _)
       | |   \
       | |oo_/

`, msg)
}
