package component

import (
	"github.com/talkbuild/talkbuild/internal/environment"
	"github.com/talkbuild/talkbuild/internal/params"
)

// Media libraries shared by every platform, linked after the voice engine.
var mediaLibs = []string{
	"LmiAudioCommon",
	"LmiClient",
	"LmiCmcp",
	"LmiDeviceManager",
	"LmiH263ClientPlugIn",
	"LmiH263CodecCommon",
	"LmiH263Decoder",
	"LmiH263Encoder",
	"LmiH264ClientPlugIn",
	"LmiH264CodecCommon",
	"LmiH264Common",
	"LmiH264Decoder",
	"LmiH264Encoder",
	"LmiIce",
	"LmiMediaPayload",
	"LmiOs",
	"LmiPacketCache",
	"LmiProtocolStack",
	"LmiRateShaper",
	"LmiRtp",
	"LmiSecurity",
	"LmiSignaling",
	"LmiStun",
	"LmiTransport",
	"LmiUi",
	"LmiUtils",
	"LmiVideoCommon",
	"LmiXml",
	"ippsmerged",
	"ippsemerged",
	"ippvcmerged",
	"ippvcemerged",
	"ippimerged",
	"ippiemerged",
	"ippsrmerged",
	"ippsremerged",
}

var windowsIPPLibs = []string{
	"ippcorel",
	"ippscmerged",
	"ippscemerged",
	"strmiids",
	"dsound",
}

var otherIPPLibs = []string{
	"ippcore",
	"ippacmerged",
	"ippacemerged",
	"ippccmerged",
	"ippccemerged",
	"ippchmerged",
	"ippchemerged",
	"ippcvmerged",
	"ippcvemerged",
	"ippdcmerged",
	"ippdcemerged",
	"ippjmerged",
	"ippjemerged",
	"ippmmerged",
	"ippmemerged",
	"ipprmerged",
	"ippremerged",
}

const (
	lmiLibRoot = "$GOOGLE3/third_party/lmi/files/merged/lib/"
	ippLibRoot = "$GOOGLE3/third_party/Intel_ipp/"
	gipsLibDir = "$MAIN_DIR/third_party/gips/Libraries/"
)

// AddMediaLibs returns a copy of decl with the media library directories and
// libraries for env's platform appended to libdirs and libs.
func AddMediaLibs(env *environment.Environment, decl *params.Params) *params.Params {
	bits := env.Bits()
	out := decl.Clone()

	lmiDir := lmiLibRoot
	ippDir := ""
	voiceEngine := ""
	switch {
	case bits.Windows:
		if bits.Coverage {
			lmiDir += "win32/c_only"
		} else {
			lmiDir += "win32/Release"
		}
		ippDir = ippLibRoot + "v_5_2_windows/ia32/lib"
		if bits.Debug {
			voiceEngine = "gipsvoiceenginelib_mtd"
		} else {
			voiceEngine = "gipsvoiceenginelib_mt"
		}
	case bits.Mac:
		lmiDir += "macos"
		ippDir = ippLibRoot + "v_5_3_mac_os_x/ia32/lib"
		voiceEngine = "VoiceEngine_mac_universal_gcc"
	case bits.Linux:
		lmiDir += "linux/x86"
		ippDir = ippLibRoot + "v_5_2_linux/ia32/lib"
		voiceEngine = "VoiceEngine_Linux_external_gcc"
	}

	dirs := []string{gipsLibDir}
	if ippDir != "" {
		dirs = append(dirs, ippDir)
	}
	dirs = append(dirs, lmiDir)
	out.MergeInto(params.LibDirs, params.List(dirs...), true)

	var libs []string
	if voiceEngine != "" {
		libs = append(libs, voiceEngine)
	}
	libs = append(libs, mediaLibs...)
	out.MergeInto(params.Libs, params.List(libs...), true)

	if bits.Windows {
		out.MergeInto(params.Libs, params.List(windowsIPPLibs...), true)
	} else {
		out.MergeInto(params.Libs, params.List(otherIPPLibs...), true)
	}

	return out
}
