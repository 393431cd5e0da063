// Package filetype classifies tracked files into broad media categories by
// extension.
package filetype

import "strings"

// Type is a broad media category.
type Type int

const (
	Unknown Type = iota
	Audio
	Document
	Image
	Video
)

func (t Type) String() string {
	switch t {
	case Audio:
		return "audio"
	case Document:
		return "document"
	case Image:
		return "image"
	case Video:
		return "video"
	default:
		return "unknown"
	}
}

var audioExts = []string{
	"aac", "ac3", "aif", "aifc", "aiff", "au", "cda", "dts", "fla", "flac",
	"it", "m1a", "m2a", "m3u", "m4a", "mid", "midi", "mka", "mod", "mp2",
	"mp3", "mpa", "ogg", "opus", "ra", "rmi", "snd", "spc", "umx", "voc",
	"wav", "wma", "xm",
}

var documentExts = []string{
	"c", "chm", "cpp", "csv", "cxx", "doc", "docm", "docx", "dot", "dotm",
	"dotx", "h", "hpp", "htm", "html", "hxx", "ini", "java", "lua", "mht",
	"mhtml", "odt", "pdf", "potm", "potx", "ppam", "pps", "ppsm", "ppsx",
	"ppt", "pptm", "pptx", "rtf", "sldm", "sldx", "thmx", "txt", "vsd",
	"wpd", "wps", "wri", "xlam", "xls", "xlsb", "xlsm", "xlsx", "xltm",
	"xltx", "xml",
}

var imageExts = []string{
	"ani", "bmp", "gif", "ico", "jpe", "jpeg", "jpg", "pcx", "png", "psd",
	"tga", "tif", "tiff", "webp", "wmf",
}

var videoExts = []string{
	"3g2", "3gp", "3gp2", "3gpp", "amr", "amv", "asf", "avi", "bdmv", "bik",
	"d2v", "divx", "drc", "dsa", "dsm", "dss", "dsv", "evo", "f4v", "flc",
	"fli", "flic", "flv", "hdmov", "ifo", "ivf", "m1v", "m2p", "m2t", "m2ts",
	"m2v", "m4b", "m4p", "m4v", "mkv", "mov", "mp2v", "mp4", "mp4v", "mpe",
	"mpeg", "mpg", "mpls", "mpv2", "mpv4", "mts", "ogm", "ogv", "pss", "pva",
	"qt", "ram", "ratdvd", "rm", "rmm", "rmvb", "roq", "rpm", "smil", "smk",
	"swf", "tp", "tpr", "ts", "vob", "vp6", "webm", "wm", "wmp", "wmv",
}

var byExt = func() map[string]Type {
	m := make(map[string]Type)
	for _, ext := range audioExts {
		m[ext] = Audio
	}
	for _, ext := range documentExts {
		m[ext] = Document
	}
	for _, ext := range imageExts {
		m[ext] = Image
	}
	for _, ext := range videoExts {
		m[ext] = Video
	}
	return m
}()

// Of returns the category of a path based on its extension. Paths with no
// extension, and dotfiles like ".gitignore", are Unknown.
func Of(path string) Type {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		path = path[i+1:]
	}
	dot := strings.LastIndexByte(path, '.')
	if dot <= 0 {
		return Unknown
	}
	return byExt[strings.ToLower(path[dot+1:])]
}
