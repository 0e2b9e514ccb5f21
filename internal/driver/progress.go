package driver

// Progress reports one finished file of a directory build.
type Progress struct {
	Path   string
	Done   int // files finished so far, this one included
	Total  int
	Cached bool
	Err    error
}
