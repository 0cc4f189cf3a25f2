package main

import (
	"github.com/go-imsto/imresize/cmd"
	_ "github.com/go-imsto/imresize/image/backend/imaging"
	_ "github.com/go-imsto/imresize/image/backend/resample"
	_ "github.com/go-imsto/imresize/image/backend/scale"
)

func main() {
	cmd.Main()
}
