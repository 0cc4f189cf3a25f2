package cmd

import (
	"fmt"
	"os"

	"github.com/go-imsto/imresize/config"
	cimg "github.com/go-imsto/imresize/image"
	zlog "github.com/go-imsto/imresize/log"
	"github.com/go-imsto/imresize/resizer"
)

var cmdResize = &Command{
	UsageLine: "resize [-from dir/] [-to dir/] [-ext png] [-size 256x256] [-backend imaging]",
	Short:     "resize all matching images of a directory",
	Long: `
resize reads every file of -from whose name ends with -ext, resizes it
and writes it into -to as rsz_<name>. Directories are used as prefixes,
keep the trailing slash. Defaults come from IMRESIZE_* environment variables.
`,
}

var (
	rFrom    = cmdResize.Flag.String("from", config.Current.From, "source directory, with trailing slash")
	rTo      = cmdResize.Flag.String("to", config.Current.To, "destination directory, with trailing slash")
	rExt     = cmdResize.Flag.String("ext", config.Current.Ext, "tail of the file names to resize")
	rSize    = cmdResize.Flag.String("size", config.Current.Size, "target size, WxH or W for a square")
	rBackend = cmdResize.Flag.String("backend", config.Current.Backend, "backend name, see 'imresize backends'")
	rFilter  = cmdResize.Flag.String("filter", config.Current.Filter, "resample filter of the backend")
	rMode    = cmdResize.Flag.String("mode", config.Current.Mode, "scale, fit or crop")
	rQuality = cmdResize.Flag.Uint("quality", uint(config.Current.Quality), "jpeg/webp quality 1-100")
)

func init() {
	cmdResize.Run = runResize
}

func runResize(args []string) bool {
	size, err := cimg.ParseSize(*rSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	kv := map[string]string{cimg.OptMode: *rMode}
	if *rFilter != "" {
		kv[cimg.OptFilter] = *rFilter
	}
	opt, err := cimg.ParseOptions(kv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	if *rQuality > 100 {
		fmt.Fprintf(os.Stderr, "quality %d out of range\n", *rQuality)
		return false
	}

	job := resizer.Job{
		Ext:     *rExt,
		Size:    size,
		Backend: *rBackend,
		Options: opt,
		Quality: cimg.Quality(*rQuality),
	}
	_, err = resizer.New(*rFrom, *rTo).ResizeAll(job)
	if err != nil {
		zlog.Errorw("resize fail", "from", *rFrom, "to", *rTo, "ext", job.Ext, "err", err)
		reportError(err, map[string]string{"backend": job.Backend, "ext": job.Ext})
		fmt.Fprintln(os.Stderr, err)
		setExitStatus(1)
	}
	return true
}
