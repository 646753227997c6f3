package config

import "flag"

// Bind registers the flags shared by the viewers on fs.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.Texture, "texture", "", "Path to texture image (PNG/JPG/GIF/TGA/BMP/TIFF/WebP)")
	fs.StringVar(&f.Shape, "shape", "", "Built-in shape when no model is given (sphere, cube)")
	fs.StringVar(&f.Out, "out", "", "Render one frame to this .png or .webp file and exit")
	fs.IntVar(&f.Width, "width", 0, "Frame width for -out (default 320)")
	fs.IntVar(&f.Height, "height", 0, "Frame height for -out (default 240)")
	fs.IntVar(&f.Upscale, "upscale", 0, "Enlarge -out frames by this factor")
	fs.IntVar(&f.FPS, "fps", 0, "Target FPS (default 60)")
	fs.Float64Var(&f.FOV, "fov", 0, "Horizontal field of view in degrees (default 90)")
	fs.StringVar(&f.Background, "bg", "", "Background color (R,G,B)")
}
