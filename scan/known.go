package scan

// tcp端口表,前1000个为nmap默认扫描的top-1000端口(常见的排在前面),之后按端口号递增补足MaxCommonPorts个
// 数据来自 https://raw.githubusercontent.com/nmap/nmap/master/nmap-services 和 /etc/services
// regenerate with: go run ./tools/update.go
var knownPorts = []struct {
	number  uint16
	service string
}{
	{80, "http"},
	{23, "telnet"},
	{443, "https"},
	{21, "ftp"},
	{22, "ssh"},
	{25, "smtp"},
	{3389, "ms-wbt-server"},
	{110, "pop3"},
	{445, "microsoft-ds"},
	{139, "netbios-ssn"},
	{143, "imap"},
	{53, "domain"},
	{135, "msrpc"},
	{3306, "mysql"},
	{8080, "http-proxy"},
	{1723, "pptp"},
	{111, "rpcbind"},
	{995, "pop3s"},
	{993, "imaps"},
	{5900, "vnc"},
	{1025, "NFS-or-IIS"},
	{587, "submission"},
	{8888, "sun-answerbook"},
	{199, "smux"},
	{1720, "h323q931"},
	{465, "smtps"},
	{548, "afp"},
	{113, "ident"},
	{81, "hosts2-ns"},
	{6001, "X11:1"},
	{10000, "snet-sensor-mgmt"},
	{514, "shell"},
	{5060, "sip"},
	{179, "bgp"},
	{1026, "LSA-or-nterm"},
	{2000, "cisco-sccp"},
	{8443, "https-alt"},
	{8000, "http-alt"},
	{32768, "filenet-tms"},
	{554, "rtsp"},
	{26, "rsftp"},
	{1433, "ms-sql-s"},
	{49152, "unknown"},
	{2001, "dc"},
	{515, "printer"},
	{8008, "http"},
	{49154, "unknown"},
	{1027, "IIS"},
	{5666, "nrpe"},
	{646, "ldp"},
	{5000, "upnp"},
	{5631, "pcanywheredata"},
	{631, "ipp"},
	{49153, "unknown"},
	{8081, "blackice-icecap"},
	{2049, "nfs"},
	{88, "kerberos-sec"},
	{79, "finger"},
	{5800, "vnc-http"},
	{106, "pop3pw"},
	{2121, "ccproxy-ftp"},
	{1110, "nfsd-status"},
	{49155, "unknown"},
	{6000, "X11"},
	{513, "login"},
	{990, "ftps"},
	{5357, "wsdapi"},
	{427, "svrloc"},
	{49156, "unknown"},
	{543, "klogin"},
	{544, "kshell"},
	{5101, "admdog"},
	{144, "news"},
	{7, "echo"},
	{389, "ldap"},
	{8009, "ajp13"},
	{3128, "squid-http"},
	{444, "snpp"},
	{9999, "abyss"},
	{5009, "airport-admin"},
	{7070, "realserver"},
	{5190, "aol"},
	{3000, "ppp"},
	{5432, "postgresql"},
	{1900, "upnp"},
	{3986, "mapper-ws_ethd"},
	{13, "daytime"},
	{1029, "ms-lsa"},
	{9, "discard"},
	{5051, "ida-agent"},
	{6646, "unknown"},
	{49157, "unknown"},
	{1028, "unknown"},
	{873, "rsync"},
	{1755, "wms"},
	{2717, "pn-requester"},
	{4899, "radmin"},
	{9100, "jetdirect"},
	{119, "nntp"},
	{37, "time"},
	{1000, "cadlock"},
	{3001, "nessus"},
	{5001, "commplex-link"},
	{82, "xfer"},
	{10010, "rxapi"},
	{1030, "iad1"},
	{9090, "zeus-admin"},
	{2107, "msmq-mgmt"},
	{1024, "kdm"},
	{2103, "zephyr-clt"},
	{6004, "X11:4"},
	{1801, "msmq"},
	{5050, "mmcc"},
	{19, "chargen"},
	{8031, "unknown"},
	{1041, "danf-ak2"},
	{255, "unknown"},
	{2967, "symantec-av"},
	{1049, "td-postman"},
	{1048, "neod2"},
	{2105, "eklogin"},
	{1053, "remote-as"},
	{1064, "jstel"},
	{3703, "adobeserver-3"},
	{1056, "vfo"},
	{1065, "syscomlan"},
	{1054, "brvread"},
	{1031, "iad2"},
	{17, "qotd"},
	{808, "ccproxy-http"},
	{3689, "rendezvous"},
	{1071, "bsquare-voip"},
	{3690, "svn"},
	{1058, "nim"},
	{2100, "amiganetfs"},
	{714, "iris-xpcs"},
	{1039, "sbl"},
	{1044, "dcutility"},
	{6002, "X11:2"},
	{8082, "blackice-alerts"},
	{1038, "mtqp"},
	{1051, "optima-vnet"},
	{1037, "ams"},
	{1057, "startron"},
	{1047, "neod1"},
	{1059, "nimreg"},
	{1069, "cognex-insight"},
	{1035, "multidropper"},
	{1040, "netsaint"},
	{1055, "ansyslmd"},
	{1060, "polestar"},
	{1042, "afrog"},
	{1045, "fpitp"},
	{1036, "nsstp"},
	{1043, "boinc"},
	{1062, "veracity"},
	{1032, "iad3"},
	{1050, "java-or-OTGfileshare"},
	{1063, "kyoceranetdev"},
	{1033, "netinfo"},
	{1061, "kiosk"},
	{1066, "fpo-fns"},
	{1068, "instl_bootc"},
	{1034, "zincite-a"},
	{1067, "instl_boots"},
	{5903, "vnc-3"},
	{9200, "wap-wsp"},
	{9000, "cslistener"},
	{9418, "git"},
	{1521, "oracle"},
	{161, "snmp"},
	{636, "ldapssl"},
	{3268, "globalcatLDAP"},
	{3269, "globalcatLDAPssl"},
	{1, "tcpmux"},
	{3, "unknown"},
	{4, "unknown"},
	{6, "unknown"},
	{20, "ftp-data"},
	{24, "unknown"},
	{30, "unknown"},
	{32, "unknown"},
	{33, "unknown"},
	{42, "unknown"},
	{43, "whois"},
	{49, "tacacs"},
	{70, "gopher"},
	{83, "unknown"},
	{84, "unknown"},
	{85, "unknown"},
	{89, "unknown"},
	{90, "unknown"},
	{99, "unknown"},
	{100, "unknown"},
	{109, "unknown"},
	{125, "unknown"},
	{146, "unknown"},
	{163, "cmip-man"},
	{211, "unknown"},
	{212, "unknown"},
	{222, "unknown"},
	{254, "unknown"},
	{256, "unknown"},
	{259, "unknown"},
	{264, "unknown"},
	{280, "unknown"},
	{301, "unknown"},
	{306, "unknown"},
	{311, "unknown"},
	{340, "unknown"},
	{366, "unknown"},
	{406, "unknown"},
	{407, "unknown"},
	{416, "unknown"},
	{417, "unknown"},
	{425, "unknown"},
	{458, "unknown"},
	{464, "kpasswd"},
	{481, "unknown"},
	{497, "unknown"},
	{500, "unknown"},
	{512, "exec"},
	{524, "unknown"},
	{541, "unknown"},
	{545, "unknown"},
	{555, "unknown"},
	{563, "nntps"},
	{593, "unknown"},
	{616, "unknown"},
	{617, "unknown"},
	{625, "unknown"},
	{648, "unknown"},
	{666, "unknown"},
	{667, "unknown"},
	{668, "unknown"},
	{683, "unknown"},
	{687, "unknown"},
	{691, "unknown"},
	{700, "unknown"},
	{705, "unknown"},
	{711, "unknown"},
	{720, "unknown"},
	{722, "unknown"},
	{726, "unknown"},
	{749, "kerberos-adm"},
	{765, "unknown"},
	{777, "moira-update"},
	{783, "spamd"},
	{787, "unknown"},
	{800, "unknown"},
	{801, "unknown"},
	{843, "unknown"},
	{880, "unknown"},
	{888, "unknown"},
	{898, "unknown"},
	{900, "unknown"},
	{901, "unknown"},
	{902, "unknown"},
	{903, "unknown"},
	{911, "unknown"},
	{912, "unknown"},
	{981, "unknown"},
	{987, "unknown"},
	{992, "telnets"},
	{999, "unknown"},
	{1001, "unknown"},
	{1002, "unknown"},
	{1007, "unknown"},
	{1009, "unknown"},
	{1010, "unknown"},
	{1011, "unknown"},
	{1021, "unknown"},
	{1022, "unknown"},
	{1023, "unknown"},
	{1046, "unknown"},
	{1052, "unknown"},
	{1070, "unknown"},
	{1072, "unknown"},
	{1073, "unknown"},
	{1074, "unknown"},
	{1075, "unknown"},
	{1076, "unknown"},
	{1077, "unknown"},
	{1078, "unknown"},
	{1079, "unknown"},
	{1080, "socks"},
	{1081, "unknown"},
	{1082, "unknown"},
	{1083, "unknown"},
	{1084, "unknown"},
	{1085, "unknown"},
	{1086, "unknown"},
	{1087, "unknown"},
	{1088, "unknown"},
	{1089, "unknown"},
	{1090, "unknown"},
	{1091, "unknown"},
	{1092, "unknown"},
	{1093, "proofd"},
	{1094, "rootd"},
	{1095, "unknown"},
	{1096, "unknown"},
	{1097, "unknown"},
	{1098, "unknown"},
	{1099, "rmiregistry"},
	{1100, "unknown"},
	{1102, "unknown"},
	{1104, "unknown"},
	{1105, "unknown"},
	{1106, "unknown"},
	{1107, "unknown"},
	{1108, "unknown"},
	{1111, "unknown"},
	{1112, "unknown"},
	{1113, "unknown"},
	{1114, "unknown"},
	{1117, "unknown"},
	{1119, "unknown"},
	{1121, "unknown"},
	{1122, "unknown"},
	{1123, "unknown"},
	{1124, "unknown"},
	{1126, "unknown"},
	{1130, "unknown"},
	{1131, "unknown"},
	{1132, "unknown"},
	{1137, "unknown"},
	{1138, "unknown"},
	{1141, "unknown"},
	{1145, "unknown"},
	{1147, "unknown"},
	{1148, "unknown"},
	{1149, "unknown"},
	{1151, "unknown"},
	{1152, "unknown"},
	{1154, "unknown"},
	{1163, "unknown"},
	{1164, "unknown"},
	{1165, "unknown"},
	{1166, "unknown"},
	{1169, "unknown"},
	{1174, "unknown"},
	{1175, "unknown"},
	{1183, "unknown"},
	{1185, "unknown"},
	{1186, "unknown"},
	{1187, "unknown"},
	{1192, "unknown"},
	{1198, "unknown"},
	{1199, "unknown"},
	{1201, "unknown"},
	{1213, "unknown"},
	{1216, "unknown"},
	{1217, "unknown"},
	{1218, "unknown"},
	{1233, "unknown"},
	{1234, "unknown"},
	{1236, "rmtcfg"},
	{1244, "unknown"},
	{1247, "unknown"},
	{1248, "unknown"},
	{1259, "unknown"},
	{1271, "unknown"},
	{1272, "unknown"},
	{1277, "unknown"},
	{1287, "unknown"},
	{1296, "unknown"},
	{1300, "unknown"},
	{1301, "unknown"},
	{1309, "unknown"},
	{1310, "unknown"},
	{1311, "unknown"},
	{1322, "unknown"},
	{1328, "unknown"},
	{1334, "unknown"},
	{1352, "lotusnote"},
	{1417, "unknown"},
	{1434, "unknown"},
	{1443, "unknown"},
	{1455, "unknown"},
	{1461, "unknown"},
	{1494, "unknown"},
	{1500, "unknown"},
	{1501, "unknown"},
	{1503, "unknown"},
	{1524, "ingreslock"},
	{1533, "unknown"},
	{1556, "unknown"},
	{1580, "unknown"},
	{1583, "unknown"},
	{1594, "unknown"},
	{1600, "unknown"},
	{1641, "unknown"},
	{1658, "unknown"},
	{1666, "unknown"},
	{1687, "unknown"},
	{1688, "unknown"},
	{1700, "unknown"},
	{1717, "unknown"},
	{1718, "unknown"},
	{1719, "unknown"},
	{1721, "unknown"},
	{1761, "unknown"},
	{1782, "unknown"},
	{1783, "unknown"},
	{1805, "unknown"},
	{1812, "radius"},
	{1839, "unknown"},
	{1840, "unknown"},
	{1862, "unknown"},
	{1863, "unknown"},
	{1864, "unknown"},
	{1875, "unknown"},
	{1914, "unknown"},
	{1935, "unknown"},
	{1947, "unknown"},
	{1971, "unknown"},
	{1972, "unknown"},
	{1974, "unknown"},
	{1984, "unknown"},
	{1998, "unknown"},
	{1999, "unknown"},
	{2002, "unknown"},
	{2003, "unknown"},
	{2004, "unknown"},
	{2005, "unknown"},
	{2006, "unknown"},
	{2007, "unknown"},
	{2008, "unknown"},
	{2009, "unknown"},
	{2010, "unknown"},
	{2013, "unknown"},
	{2020, "unknown"},
	{2021, "unknown"},
	{2022, "unknown"},
	{2030, "unknown"},
	{2033, "unknown"},
	{2034, "unknown"},
	{2035, "unknown"},
	{2038, "unknown"},
	{2040, "unknown"},
	{2041, "unknown"},
	{2042, "unknown"},
	{2043, "unknown"},
	{2045, "unknown"},
	{2046, "unknown"},
	{2047, "unknown"},
	{2048, "unknown"},
	{2065, "unknown"},
	{2068, "unknown"},
	{2099, "unknown"},
	{2106, "unknown"},
	{2111, "unknown"},
	{2119, "gsigatekeeper"},
	{2126, "unknown"},
	{2135, "gris"},
	{2144, "unknown"},
	{2160, "unknown"},
	{2161, "unknown"},
	{2170, "unknown"},
	{2179, "unknown"},
	{2190, "unknown"},
	{2191, "unknown"},
	{2196, "unknown"},
	{2200, "unknown"},
	{2222, "unknown"},
	{2251, "unknown"},
	{2260, "unknown"},
	{2288, "unknown"},
	{2301, "unknown"},
	{2323, "unknown"},
	{2366, "unknown"},
	{2381, "unknown"},
	{2382, "unknown"},
	{2383, "unknown"},
	{2393, "unknown"},
	{2394, "unknown"},
	{2399, "unknown"},
	{2401, "cvspserver"},
	{2492, "unknown"},
	{2500, "unknown"},
	{2522, "unknown"},
	{2525, "unknown"},
	{2557, "unknown"},
	{2601, "zebra"},
	{2602, "ripd"},
	{2604, "ospfd"},
	{2605, "bgpd"},
	{2607, "ospfapi"},
	{2608, "isisd"},
	{2638, "unknown"},
	{2701, "unknown"},
	{2702, "unknown"},
	{2710, "unknown"},
	{2718, "unknown"},
	{2725, "unknown"},
	{2800, "unknown"},
	{2809, "unknown"},
	{2811, "gsiftp"},
	{2869, "unknown"},
	{2875, "unknown"},
	{2909, "unknown"},
	{2910, "unknown"},
	{2920, "unknown"},
	{2968, "unknown"},
	{2998, "unknown"},
	{3003, "unknown"},
	{3005, "unknown"},
	{3006, "unknown"},
	{3007, "unknown"},
	{3011, "unknown"},
	{3013, "unknown"},
	{3017, "unknown"},
	{3030, "unknown"},
	{3031, "unknown"},
	{3052, "unknown"},
	{3071, "unknown"},
	{3077, "unknown"},
	{3168, "unknown"},
	{3211, "unknown"},
	{3221, "unknown"},
	{3260, "iscsi-target"},
	{3261, "unknown"},
	{3283, "unknown"},
	{3300, "unknown"},
	{3301, "unknown"},
	{3322, "unknown"},
	{3323, "unknown"},
	{3324, "unknown"},
	{3325, "unknown"},
	{3333, "unknown"},
	{3351, "unknown"},
	{3367, "unknown"},
	{3369, "unknown"},
	{3370, "unknown"},
	{3371, "unknown"},
	{3372, "unknown"},
	{3390, "unknown"},
	{3404, "unknown"},
	{3476, "unknown"},
	{3493, "nut"},
	{3517, "unknown"},
	{3527, "unknown"},
	{3546, "unknown"},
	{3551, "unknown"},
	{3580, "unknown"},
	{3659, "unknown"},
	{3737, "unknown"},
	{3766, "unknown"},
	{3784, "unknown"},
	{3800, "unknown"},
	{3801, "unknown"},
	{3809, "unknown"},
	{3814, "unknown"},
	{3826, "unknown"},
	{3827, "unknown"},
	{3828, "unknown"},
	{3851, "unknown"},
	{3869, "unknown"},
	{3871, "unknown"},
	{3878, "unknown"},
	{3880, "unknown"},
	{3889, "unknown"},
	{3905, "unknown"},
	{3914, "unknown"},
	{3918, "unknown"},
	{3920, "unknown"},
	{3945, "unknown"},
	{3971, "unknown"},
	{3995, "unknown"},
	{3998, "unknown"},
	{4000, "unknown"},
	{4001, "unknown"},
	{4002, "unknown"},
	{4003, "unknown"},
	{4004, "unknown"},
	{4005, "unknown"},
	{4006, "unknown"},
	{4045, "unknown"},
	{4111, "unknown"},
	{4125, "unknown"},
	{4126, "unknown"},
	{4129, "unknown"},
	{4224, "unknown"},
	{4242, "unknown"},
	{4279, "unknown"},
	{4321, "unknown"},
	{4343, "unknown"},
	{4443, "unknown"},
	{4444, "unknown"},
	{4445, "unknown"},
	{4446, "unknown"},
	{4449, "unknown"},
	{4550, "unknown"},
	{4567, "unknown"},
	{4662, "unknown"},
	{4848, "unknown"},
	{4900, "unknown"},
	{4998, "unknown"},
	{5002, "unknown"},
	{5003, "unknown"},
	{5004, "unknown"},
	{5030, "unknown"},
	{5033, "unknown"},
	{5054, "unknown"},
	{5061, "sip-tls"},
	{5080, "unknown"},
	{5087, "unknown"},
	{5100, "unknown"},
	{5102, "unknown"},
	{5120, "unknown"},
	{5200, "unknown"},
	{5214, "unknown"},
	{5221, "unknown"},
	{5222, "xmpp-client"},
	{5225, "unknown"},
	{5226, "unknown"},
	{5269, "xmpp-server"},
	{5280, "unknown"},
	{5298, "unknown"},
	{5405, "unknown"},
	{5414, "unknown"},
	{5431, "unknown"},
	{5440, "unknown"},
	{5500, "unknown"},
	{5510, "unknown"},
	{5544, "unknown"},
	{5550, "unknown"},
	{5555, "unknown"},
	{5560, "unknown"},
	{5566, "unknown"},
	{5633, "unknown"},
	{5678, "unknown"},
	{5679, "unknown"},
	{5718, "unknown"},
	{5730, "unknown"},
	{5801, "unknown"},
	{5802, "unknown"},
	{5810, "unknown"},
	{5811, "unknown"},
	{5815, "unknown"},
	{5822, "unknown"},
	{5825, "unknown"},
	{5850, "unknown"},
	{5859, "unknown"},
	{5862, "unknown"},
	{5877, "unknown"},
	{5901, "unknown"},
	{5902, "unknown"},
	{5904, "unknown"},
	{5906, "unknown"},
	{5907, "unknown"},
	{5910, "unknown"},
	{5911, "unknown"},
	{5915, "unknown"},
	{5922, "unknown"},
	{5925, "unknown"},
	{5950, "unknown"},
	{5952, "unknown"},
	{5959, "unknown"},
	{5960, "unknown"},
	{5961, "unknown"},
	{5962, "unknown"},
	{5963, "unknown"},
	{5987, "unknown"},
	{5988, "unknown"},
	{5989, "unknown"},
	{5998, "unknown"},
	{5999, "unknown"},
	{6003, "x11-3"},
	{6005, "x11-5"},
	{6006, "x11-6"},
	{6007, "x11-7"},
	{6009, "unknown"},
	{6025, "unknown"},
	{6059, "unknown"},
	{6100, "unknown"},
	{6101, "unknown"},
	{6106, "unknown"},
	{6112, "unknown"},
	{6123, "unknown"},
	{6129, "unknown"},
	{6156, "unknown"},
	{6346, "gnutella-svc"},
	{6389, "unknown"},
	{6502, "unknown"},
	{6510, "unknown"},
	{6543, "unknown"},
	{6547, "unknown"},
	{6565, "unknown"},
	{6566, "sane-port"},
	{6567, "unknown"},
	{6580, "unknown"},
	{6666, "unknown"},
	{6667, "ircd"},
	{6668, "unknown"},
	{6669, "unknown"},
	{6689, "unknown"},
	{6692, "unknown"},
	{6699, "unknown"},
	{6779, "unknown"},
	{6788, "unknown"},
	{6789, "unknown"},
	{6792, "unknown"},
	{6839, "unknown"},
	{6881, "unknown"},
	{6901, "unknown"},
	{6969, "unknown"},
	{7000, "bbs"},
	{7001, "unknown"},
	{7002, "unknown"},
	{7004, "unknown"},
	{7007, "unknown"},
	{7019, "unknown"},
	{7025, "unknown"},
	{7100, "font-service"},
	{7103, "unknown"},
	{7106, "unknown"},
	{7200, "unknown"},
	{7201, "unknown"},
	{7402, "unknown"},
	{7435, "unknown"},
	{7443, "unknown"},
	{7496, "unknown"},
	{7512, "unknown"},
	{7625, "unknown"},
	{7627, "unknown"},
	{7676, "unknown"},
	{7741, "unknown"},
	{7777, "unknown"},
	{7778, "unknown"},
	{7800, "unknown"},
	{7911, "unknown"},
	{7920, "unknown"},
	{7921, "unknown"},
	{7937, "unknown"},
	{7938, "unknown"},
	{7999, "unknown"},
	{8001, "unknown"},
	{8002, "unknown"},
	{8007, "unknown"},
	{8010, "unknown"},
	{8011, "unknown"},
	{8021, "zope-ftp"},
	{8022, "unknown"},
	{8042, "unknown"},
	{8045, "unknown"},
	{8083, "unknown"},
	{8084, "unknown"},
	{8085, "unknown"},
	{8086, "unknown"},
	{8087, "unknown"},
	{8088, "omniorb"},
	{8089, "unknown"},
	{8090, "unknown"},
	{8093, "unknown"},
	{8099, "unknown"},
	{8100, "unknown"},
	{8180, "unknown"},
	{8181, "unknown"},
	{8192, "unknown"},
	{8193, "unknown"},
	{8194, "unknown"},
	{8200, "unknown"},
	{8222, "unknown"},
	{8254, "unknown"},
	{8290, "unknown"},
	{8291, "unknown"},
	{8292, "unknown"},
	{8300, "unknown"},
	{8333, "unknown"},
	{8383, "unknown"},
	{8400, "unknown"},
	{8402, "unknown"},
	{8500, "unknown"},
	{8600, "unknown"},
	{8649, "unknown"},
	{8651, "unknown"},
	{8652, "unknown"},
	{8654, "unknown"},
	{8701, "unknown"},
	{8800, "unknown"},
	{8873, "unknown"},
	{8899, "unknown"},
	{8994, "unknown"},
	{9001, "unknown"},
	{9002, "unknown"},
	{9003, "unknown"},
	{9009, "unknown"},
	{9010, "unknown"},
	{9011, "unknown"},
	{9040, "unknown"},
	{9050, "unknown"},
	{9071, "unknown"},
	{9080, "unknown"},
	{9081, "unknown"},
	{9091, "unknown"},
	{9099, "unknown"},
	{9101, "bacula-dir"},
	{9102, "bacula-fd"},
	{9103, "bacula-sd"},
	{9110, "unknown"},
	{9111, "unknown"},
	{9207, "unknown"},
	{9220, "unknown"},
	{9290, "unknown"},
	{9415, "unknown"},
	{9485, "unknown"},
	{9500, "unknown"},
	{9502, "unknown"},
	{9503, "unknown"},
	{9535, "unknown"},
	{9575, "unknown"},
	{9593, "unknown"},
	{9594, "unknown"},
	{9595, "unknown"},
	{9618, "unknown"},
	{9666, "unknown"},
	{9876, "unknown"},
	{9877, "unknown"},
	{9878, "unknown"},
	{9898, "unknown"},
	{9900, "unknown"},
	{9917, "unknown"},
	{9929, "unknown"},
	{9943, "unknown"},
	{9944, "unknown"},
	{9968, "unknown"},
	{9998, "unknown"},
	{10001, "unknown"},
	{10002, "unknown"},
	{10003, "unknown"},
	{10004, "unknown"},
	{10009, "unknown"},
	{10012, "unknown"},
	{10024, "unknown"},
	{10025, "unknown"},
	{10082, "amandaidx"},
	{10180, "unknown"},
	{10215, "unknown"},
	{10243, "unknown"},
	{10566, "unknown"},
	{10616, "unknown"},
	{10617, "unknown"},
	{10621, "unknown"},
	{10626, "unknown"},
	{10628, "unknown"},
	{10629, "unknown"},
	{10778, "unknown"},
	{11110, "unknown"},
	{11111, "unknown"},
	{11967, "unknown"},
	{12000, "unknown"},
	{12174, "unknown"},
	{12265, "unknown"},
	{12345, "unknown"},
	{13456, "unknown"},
	{13722, "unknown"},
	{13782, "unknown"},
	{13783, "unknown"},
	{14000, "unknown"},
	{14238, "unknown"},
	{14441, "unknown"},
	{14442, "unknown"},
	{15000, "unknown"},
	{15002, "unknown"},
	{15003, "unknown"},
	{15004, "unknown"},
	{15660, "unknown"},
	{15742, "unknown"},
	{16000, "unknown"},
	{16001, "unknown"},
	{16012, "unknown"},
	{16016, "unknown"},
	{16018, "unknown"},
	{16080, "unknown"},
	{16113, "unknown"},
	{16992, "unknown"},
	{16993, "unknown"},
	{17877, "unknown"},
	{17988, "unknown"},
	{18040, "unknown"},
	{18101, "unknown"},
	{18988, "unknown"},
	{19101, "unknown"},
	{19283, "unknown"},
	{19315, "unknown"},
	{19350, "unknown"},
	{19780, "unknown"},
	{19801, "unknown"},
	{19842, "unknown"},
	{20000, "unknown"},
	{20005, "unknown"},
	{20031, "unknown"},
	{20221, "unknown"},
	{20222, "unknown"},
	{20828, "unknown"},
	{21571, "unknown"},
	{22939, "unknown"},
	{23502, "unknown"},
	{24444, "unknown"},
	{24800, "unknown"},
	{25734, "unknown"},
	{25735, "unknown"},
	{26214, "unknown"},
	{27000, "unknown"},
	{27352, "unknown"},
	{27353, "unknown"},
	{27355, "unknown"},
	{27356, "unknown"},
	{27715, "unknown"},
	{28201, "unknown"},
	{30000, "unknown"},
	{30718, "unknown"},
	{30951, "unknown"},
	{31038, "unknown"},
	{31337, "unknown"},
	{32769, "unknown"},
	{32770, "unknown"},
	{32771, "unknown"},
	{32772, "unknown"},
	{32773, "unknown"},
	{32774, "unknown"},
	{32775, "unknown"},
	{32776, "unknown"},
	{32777, "unknown"},
	{32778, "unknown"},
	{32779, "unknown"},
	{32780, "unknown"},
	{32781, "unknown"},
	{32782, "unknown"},
	{32783, "unknown"},
	{32784, "unknown"},
	{32785, "unknown"},
	{33354, "unknown"},
	{33899, "unknown"},
	{34571, "unknown"},
	{34572, "unknown"},
	{34573, "unknown"},
	{35500, "unknown"},
	{38292, "unknown"},
	{40193, "unknown"},
	{40911, "unknown"},
	{41511, "unknown"},
	{42510, "unknown"},
	{44176, "unknown"},
	{44442, "unknown"},
	{44443, "unknown"},
	{44501, "unknown"},
	{45100, "unknown"},
	{48080, "unknown"},
	{49158, "unknown"},
	{49159, "unknown"},
	{49160, "unknown"},
	{49161, "unknown"},
	{49163, "unknown"},
	{49165, "unknown"},
	{49167, "unknown"},
	{49175, "unknown"},
	{49176, "unknown"},
	{49400, "unknown"},
	{49999, "unknown"},
	{50000, "unknown"},
	{50001, "unknown"},
	{50002, "unknown"},
	{50003, "unknown"},
	{50006, "unknown"},
	{50300, "unknown"},
	{50389, "unknown"},
	{50500, "unknown"},
	{50636, "unknown"},
	{50800, "unknown"},
	{51103, "unknown"},
	{51493, "unknown"},
	{52673, "unknown"},
	{52822, "unknown"},
	{52848, "unknown"},
	{52869, "unknown"},
	{54045, "unknown"},
	{54328, "unknown"},
	{55055, "unknown"},
	{55056, "unknown"},
	{55555, "unknown"},
	{55600, "unknown"},
	{56737, "unknown"},
	{56738, "unknown"},
	{57294, "unknown"},
	{57797, "unknown"},
	{58080, "unknown"},
	{60020, "unknown"},
	{60443, "unknown"},
	{61532, "unknown"},
	{61900, "unknown"},
	{62078, "unknown"},
	{63331, "unknown"},
	{64623, "unknown"},
	{64680, "unknown"},
	{65000, "unknown"},
	{65129, "unknown"},
	{65389, "unknown"},
	{2, "compressnet"},
	{6379, "redis"},
	{27017, "mongod"},
	{11211, "memcache"},
	{5672, "amqp"},
	{2375, "docker"},
	{6443, "sun-sr-https"},
	{5985, "wsman"},
	{5986, "wsmans"},
	{5353, "mdns"},
	{8883, "secure-mqtt"},
	{1883, "mqtt"},
	{25565, "minecraft"},
	{5, "unknown"},
	{8, "unknown"},
	{10, "unknown"},
	{11, "systat"},
	{12, "unknown"},
	{14, "unknown"},
	{15, "netstat"},
	{16, "unknown"},
	{18, "unknown"},
	{27, "unknown"},
	{28, "unknown"},
	{29, "unknown"},
	{31, "unknown"},
	{34, "unknown"},
	{35, "unknown"},
	{36, "unknown"},
	{38, "unknown"},
	{39, "unknown"},
	{40, "unknown"},
	{41, "unknown"},
	{44, "unknown"},
	{45, "unknown"},
	{46, "unknown"},
	{47, "unknown"},
	{48, "unknown"},
	{50, "unknown"},
	{51, "unknown"},
	{52, "unknown"},
	{54, "unknown"},
	{55, "unknown"},
	{56, "unknown"},
	{57, "unknown"},
	{58, "unknown"},
	{59, "unknown"},
	{60, "unknown"},
	{61, "unknown"},
	{62, "unknown"},
	{63, "unknown"},
	{64, "unknown"},
	{65, "unknown"},
	{66, "unknown"},
	{67, "unknown"},
	{68, "unknown"},
	{69, "unknown"},
	{71, "unknown"},
	{72, "unknown"},
	{73, "unknown"},
	{74, "unknown"},
	{75, "unknown"},
	{76, "unknown"},
	{77, "unknown"},
	{78, "unknown"},
	{86, "unknown"},
	{87, "unknown"},
	{91, "unknown"},
	{92, "unknown"},
	{93, "unknown"},
	{94, "unknown"},
	{95, "unknown"},
	{96, "unknown"},
	{97, "unknown"},
	{98, "unknown"},
	{101, "unknown"},
	{102, "iso-tsap"},
	{103, "unknown"},
	{104, "acr-nema"},
	{105, "unknown"},
	{107, "unknown"},
	{108, "unknown"},
	{112, "unknown"},
	{114, "unknown"},
	{115, "unknown"},
	{116, "unknown"},
	{117, "unknown"},
	{118, "unknown"},
	{120, "unknown"},
	{121, "unknown"},
	{122, "unknown"},
	{123, "unknown"},
	{124, "unknown"},
	{126, "unknown"},
	{127, "unknown"},
	{128, "unknown"},
	{129, "unknown"},
	{130, "unknown"},
	{131, "unknown"},
	{132, "unknown"},
	{133, "unknown"},
	{134, "unknown"},
	{136, "unknown"},
	{137, "unknown"},
	{138, "unknown"},
	{140, "unknown"},
	{141, "unknown"},
	{142, "unknown"},
	{145, "unknown"},
	{147, "unknown"},
	{148, "unknown"},
	{149, "unknown"},
	{150, "unknown"},
	{151, "unknown"},
	{152, "unknown"},
	{153, "unknown"},
	{154, "unknown"},
	{155, "unknown"},
	{156, "unknown"},
	{157, "unknown"},
	{158, "unknown"},
	{159, "unknown"},
	{160, "unknown"},
	{162, "snmp-trap"},
	{164, "cmip-agent"},
	{165, "unknown"},
	{166, "unknown"},
	{167, "unknown"},
	{168, "unknown"},
	{169, "unknown"},
	{170, "unknown"},
	{171, "unknown"},
	{172, "unknown"},
	{173, "unknown"},
	{174, "mailq"},
	{175, "unknown"},
	{176, "unknown"},
	{177, "unknown"},
	{178, "unknown"},
	{180, "unknown"},
	{181, "unknown"},
	{182, "unknown"},
	{183, "unknown"},
	{184, "unknown"},
	{185, "unknown"},
	{186, "unknown"},
	{187, "unknown"},
	{188, "unknown"},
	{189, "unknown"},
	{190, "unknown"},
	{191, "unknown"},
	{192, "unknown"},
	{193, "unknown"},
	{194, "unknown"},
	{195, "unknown"},
	{196, "unknown"},
	{197, "unknown"},
	{198, "unknown"},
	{200, "unknown"},
	{201, "unknown"},
	{202, "unknown"},
	{203, "unknown"},
	{204, "unknown"},
	{205, "unknown"},
	{206, "unknown"},
	{207, "unknown"},
	{208, "unknown"},
	{209, "qmtp"},
	{210, "z3950"},
	{213, "unknown"},
	{214, "unknown"},
	{215, "unknown"},
	{216, "unknown"},
	{217, "unknown"},
	{218, "unknown"},
	{219, "unknown"},
	{220, "unknown"},
	{221, "unknown"},
	{223, "unknown"},
	{224, "unknown"},
	{225, "unknown"},
	{226, "unknown"},
	{227, "unknown"},
	{228, "unknown"},
	{229, "unknown"},
	{230, "unknown"},
	{231, "unknown"},
	{232, "unknown"},
	{233, "unknown"},
	{234, "unknown"},
	{235, "unknown"},
	{236, "unknown"},
	{237, "unknown"},
	{238, "unknown"},
	{239, "unknown"},
	{240, "unknown"},
	{241, "unknown"},
	{242, "unknown"},
	{243, "unknown"},
	{244, "unknown"},
	{245, "unknown"},
	{246, "unknown"},
	{247, "unknown"},
	{248, "unknown"},
	{249, "unknown"},
	{250, "unknown"},
	{251, "unknown"},
	{252, "unknown"},
	{253, "unknown"},
	{257, "unknown"},
	{258, "unknown"},
	{260, "unknown"},
	{261, "unknown"},
	{262, "unknown"},
	{263, "unknown"},
	{265, "unknown"},
	{266, "unknown"},
	{267, "unknown"},
	{268, "unknown"},
	{269, "unknown"},
	{270, "unknown"},
	{271, "unknown"},
	{272, "unknown"},
	{273, "unknown"},
	{274, "unknown"},
	{275, "unknown"},
	{276, "unknown"},
	{277, "unknown"},
	{278, "unknown"},
	{279, "unknown"},
	{281, "unknown"},
	{282, "unknown"},
	{283, "unknown"},
	{284, "unknown"},
	{285, "unknown"},
	{286, "unknown"},
	{287, "unknown"},
	{288, "unknown"},
	{289, "unknown"},
	{290, "unknown"},
	{291, "unknown"},
	{292, "unknown"},
	{293, "unknown"},
	{294, "unknown"},
	{295, "unknown"},
	{296, "unknown"},
	{297, "unknown"},
	{298, "unknown"},
	{299, "unknown"},
	{300, "unknown"},
	{302, "unknown"},
	{303, "unknown"},
	{304, "unknown"},
	{305, "unknown"},
	{307, "unknown"},
	{308, "unknown"},
	{309, "unknown"},
	{310, "unknown"},
	{312, "unknown"},
	{313, "unknown"},
	{314, "unknown"},
	{315, "unknown"},
	{316, "unknown"},
	{317, "unknown"},
	{318, "unknown"},
	{319, "unknown"},
	{320, "unknown"},
	{321, "unknown"},
	{322, "unknown"},
	{323, "unknown"},
	{324, "unknown"},
	{325, "unknown"},
	{326, "unknown"},
	{327, "unknown"},
	{328, "unknown"},
	{329, "unknown"},
	{330, "unknown"},
	{331, "unknown"},
	{332, "unknown"},
	{333, "unknown"},
	{334, "unknown"},
	{335, "unknown"},
	{336, "unknown"},
	{337, "unknown"},
	{338, "unknown"},
	{339, "unknown"},
	{341, "unknown"},
	{342, "unknown"},
	{343, "unknown"},
	{344, "unknown"},
	{345, "pawserv"},
	{346, "zserv"},
	{347, "unknown"},
	{348, "unknown"},
	{349, "unknown"},
	{350, "unknown"},
	{351, "unknown"},
	{352, "unknown"},
	{353, "unknown"},
	{354, "unknown"},
	{355, "unknown"},
	{356, "unknown"},
	{357, "unknown"},
	{358, "unknown"},
	{359, "unknown"},
	{360, "unknown"},
	{361, "unknown"},
	{362, "unknown"},
	{363, "unknown"},
	{364, "unknown"},
	{365, "unknown"},
	{367, "unknown"},
	{368, "unknown"},
	{369, "rpc2portmap"},
	{370, "codaauth2"},
	{371, "unknown"},
	{372, "unknown"},
	{373, "unknown"},
	{374, "unknown"},
	{375, "unknown"},
	{376, "unknown"},
	{377, "unknown"},
	{378, "unknown"},
	{379, "unknown"},
	{380, "unknown"},
	{381, "unknown"},
	{382, "unknown"},
	{383, "unknown"},
	{384, "unknown"},
	{385, "unknown"},
	{386, "unknown"},
	{387, "unknown"},
	{388, "unknown"},
	{390, "unknown"},
	{391, "unknown"},
	{392, "unknown"},
	{393, "unknown"},
	{394, "unknown"},
	{395, "unknown"},
	{396, "unknown"},
	{397, "unknown"},
	{398, "unknown"},
	{399, "unknown"},
	{400, "unknown"},
	{401, "unknown"},
	{402, "unknown"},
	{403, "unknown"},
	{404, "unknown"},
	{405, "unknown"},
	{408, "unknown"},
	{409, "unknown"},
	{410, "unknown"},
	{411, "unknown"},
	{412, "unknown"},
	{413, "unknown"},
	{414, "unknown"},
	{415, "unknown"},
	{418, "unknown"},
	{419, "unknown"},
	{420, "unknown"},
	{421, "unknown"},
	{422, "unknown"},
	{423, "unknown"},
	{424, "unknown"},
	{426, "unknown"},
	{428, "unknown"},
	{429, "unknown"},
	{430, "unknown"},
	{431, "unknown"},
	{432, "unknown"},
	{433, "unknown"},
	{434, "unknown"},
	{435, "unknown"},
	{436, "unknown"},
	{437, "unknown"},
	{438, "unknown"},
	{439, "unknown"},
	{440, "unknown"},
	{441, "unknown"},
	{442, "unknown"},
	{446, "unknown"},
	{447, "unknown"},
	{448, "unknown"},
	{449, "unknown"},
	{450, "unknown"},
	{451, "unknown"},
	{452, "unknown"},
	{453, "unknown"},
	{454, "unknown"},
	{455, "unknown"},
	{456, "unknown"},
	{457, "unknown"},
	{459, "unknown"},
	{460, "unknown"},
	{461, "unknown"},
	{462, "unknown"},
	{463, "unknown"},
	{466, "unknown"},
	{467, "unknown"},
	{468, "unknown"},
	{469, "unknown"},
	{470, "unknown"},
	{471, "unknown"},
	{472, "unknown"},
	{473, "unknown"},
	{474, "unknown"},
	{475, "unknown"},
	{476, "unknown"},
	{477, "unknown"},
	{478, "unknown"},
	{479, "unknown"},
	{480, "unknown"},
	{482, "unknown"},
	{483, "unknown"},
	{484, "unknown"},
	{485, "unknown"},
	{486, "unknown"},
	{487, "saft"},
	{488, "unknown"},
	{489, "unknown"},
	{490, "unknown"},
	{491, "unknown"},
	{492, "unknown"},
	{493, "unknown"},
	{494, "unknown"},
	{495, "unknown"},
	{496, "unknown"},
	{498, "unknown"},
	{499, "unknown"},
	{501, "unknown"},
	{502, "unknown"},
	{503, "unknown"},
	{504, "unknown"},
	{505, "unknown"},
	{506, "unknown"},
	{507, "unknown"},
	{508, "unknown"},
	{509, "unknown"},
	{510, "unknown"},
	{511, "unknown"},
	{516, "unknown"},
	{517, "unknown"},
	{518, "unknown"},
	{519, "unknown"},
	{520, "unknown"},
	{521, "unknown"},
	{522, "unknown"},
	{523, "unknown"},
	{525, "unknown"},
	{526, "unknown"},
	{527, "unknown"},
	{528, "unknown"},
	{529, "unknown"},
	{530, "unknown"},
	{531, "unknown"},
	{532, "unknown"},
	{533, "unknown"},
	{534, "unknown"},
	{535, "unknown"},
	{536, "unknown"},
	{537, "unknown"},
	{538, "gdomap"},
	{539, "unknown"},
	{540, "uucp"},
	{542, "unknown"},
	{546, "unknown"},
	{547, "unknown"},
	{549, "unknown"},
	{550, "unknown"},
	{551, "unknown"},
	{552, "unknown"},
	{553, "unknown"},
	{556, "unknown"},
	{557, "unknown"},
	{558, "unknown"},
	{559, "unknown"},
	{560, "unknown"},
	{561, "unknown"},
	{562, "unknown"},
	{564, "unknown"},
	{565, "unknown"},
	{566, "unknown"},
	{567, "unknown"},
	{568, "unknown"},
	{569, "unknown"},
	{570, "unknown"},
	{571, "unknown"},
	{572, "unknown"},
	{573, "unknown"},
	{574, "unknown"},
	{575, "unknown"},
	{576, "unknown"},
	{577, "unknown"},
	{578, "unknown"},
	{579, "unknown"},
	{580, "unknown"},
	{581, "unknown"},
	{582, "unknown"},
	{583, "unknown"},
	{584, "unknown"},
	{585, "unknown"},
	{586, "unknown"},
	{588, "unknown"},
	{589, "unknown"},
	{590, "unknown"},
	{591, "unknown"},
	{592, "unknown"},
	{594, "unknown"},
	{595, "unknown"},
	{596, "unknown"},
	{597, "unknown"},
	{598, "unknown"},
	{599, "unknown"},
	{600, "unknown"},
	{601, "unknown"},
	{602, "unknown"},
	{603, "unknown"},
	{604, "unknown"},
	{605, "unknown"},
	{606, "unknown"},
	{607, "nqs"},
	{608, "unknown"},
	{609, "unknown"},
	{610, "unknown"},
	{611, "unknown"},
	{612, "unknown"},
	{613, "unknown"},
	{614, "unknown"},
	{615, "unknown"},
	{618, "unknown"},
	{619, "unknown"},
	{620, "unknown"},
	{621, "unknown"},
	{622, "unknown"},
	{623, "unknown"},
	{624, "unknown"},
	{626, "unknown"},
	{627, "unknown"},
	{628, "qmqp"},
	{629, "unknown"},
	{630, "unknown"},
	{632, "unknown"},
	{633, "unknown"},
	{634, "unknown"},
	{635, "unknown"},
	{637, "unknown"},
	{638, "unknown"},
	{639, "unknown"},
	{640, "unknown"},
	{641, "unknown"},
	{642, "unknown"},
	{643, "unknown"},
	{644, "unknown"},
	{645, "unknown"},
	{647, "unknown"},
	{649, "unknown"},
	{650, "unknown"},
	{651, "unknown"},
	{652, "unknown"},
	{653, "unknown"},
	{654, "unknown"},
	{655, "tinc"},
	{656, "unknown"},
	{657, "unknown"},
	{658, "unknown"},
	{659, "unknown"},
	{660, "unknown"},
	{661, "unknown"},
	{662, "unknown"},
	{663, "unknown"},
	{664, "unknown"},
	{665, "unknown"},
	{669, "unknown"},
	{670, "unknown"},
	{671, "unknown"},
	{672, "unknown"},
	{673, "unknown"},
	{674, "unknown"},
	{675, "unknown"},
	{676, "unknown"},
	{677, "unknown"},
	{678, "unknown"},
	{679, "unknown"},
	{680, "unknown"},
	{681, "unknown"},
	{682, "unknown"},
	{684, "unknown"},
	{685, "unknown"},
	{686, "unknown"},
	{688, "unknown"},
	{689, "unknown"},
	{690, "unknown"},
	{692, "unknown"},
	{693, "unknown"},
	{694, "unknown"},
	{695, "unknown"},
	{696, "unknown"},
	{697, "unknown"},
	{698, "unknown"},
	{699, "unknown"},
	{701, "unknown"},
	{702, "unknown"},
	{703, "unknown"},
	{704, "unknown"},
	{706, "silc"},
	{707, "unknown"},
	{708, "unknown"},
	{709, "unknown"},
	{710, "unknown"},
	{712, "unknown"},
	{713, "unknown"},
	{715, "unknown"},
	{716, "unknown"},
	{717, "unknown"},
	{718, "unknown"},
	{719, "unknown"},
	{721, "unknown"},
	{723, "unknown"},
	{724, "unknown"},
	{725, "unknown"},
	{727, "unknown"},
	{728, "unknown"},
	{729, "unknown"},
	{730, "unknown"},
	{731, "unknown"},
	{732, "unknown"},
	{733, "unknown"},
	{734, "unknown"},
	{735, "unknown"},
	{736, "unknown"},
	{737, "unknown"},
	{738, "unknown"},
	{739, "unknown"},
	{740, "unknown"},
	{741, "unknown"},
	{742, "unknown"},
	{743, "unknown"},
	{744, "unknown"},
	{745, "unknown"},
	{746, "unknown"},
	{747, "unknown"},
	{748, "unknown"},
	{750, "kerberos4"},
	{751, "kerberos-master"},
	{752, "unknown"},
	{753, "unknown"},
	{754, "krb-prop"},
	{755, "unknown"},
	{756, "unknown"},
	{757, "unknown"},
	{758, "unknown"},
	{759, "unknown"},
	{760, "unknown"},
	{761, "unknown"},
	{762, "unknown"},
	{763, "unknown"},
	{764, "unknown"},
	{766, "unknown"},
	{767, "unknown"},
	{768, "unknown"},
	{769, "unknown"},
	{770, "unknown"},
	{771, "unknown"},
	{772, "unknown"},
	{773, "unknown"},
	{774, "unknown"},
	{775, "moira-db"},
	{776, "unknown"},
	{778, "unknown"},
	{779, "unknown"},
	{780, "unknown"},
	{781, "unknown"},
	{782, "unknown"},
	{784, "unknown"},
	{785, "unknown"},
	{786, "unknown"},
	{788, "unknown"},
	{789, "unknown"},
	{790, "unknown"},
	{791, "unknown"},
	{792, "unknown"},
	{793, "unknown"},
	{794, "unknown"},
	{795, "unknown"},
	{796, "unknown"},
	{797, "unknown"},
	{798, "unknown"},
	{799, "unknown"},
	{802, "unknown"},
	{803, "unknown"},
	{804, "unknown"},
	{805, "unknown"},
	{806, "unknown"},
	{807, "unknown"},
	{809, "unknown"},
	{810, "unknown"},
	{811, "unknown"},
	{812, "unknown"},
	{813, "unknown"},
	{814, "unknown"},
	{815, "unknown"},
	{816, "unknown"},
	{817, "unknown"},
	{818, "unknown"},
	{819, "unknown"},
	{820, "unknown"},
	{821, "unknown"},
	{822, "unknown"},
	{823, "unknown"},
	{824, "unknown"},
	{825, "unknown"},
	{826, "unknown"},
	{827, "unknown"},
	{828, "unknown"},
	{829, "unknown"},
	{830, "unknown"},
	{831, "unknown"},
	{832, "unknown"},
	{833, "unknown"},
	{834, "unknown"},
	{835, "unknown"},
	{836, "unknown"},
	{837, "unknown"},
	{838, "unknown"},
	{839, "unknown"},
	{840, "unknown"},
	{841, "unknown"},
	{842, "unknown"},
	{844, "unknown"},
	{845, "unknown"},
	{846, "unknown"},
	{847, "unknown"},
	{848, "unknown"},
	{849, "unknown"},
	{850, "unknown"},
	{851, "unknown"},
	{852, "unknown"},
	{853, "domain-s"},
	{854, "unknown"},
	{855, "unknown"},
	{856, "unknown"},
	{857, "unknown"},
	{858, "unknown"},
	{859, "unknown"},
	{860, "unknown"},
	{861, "unknown"},
	{862, "unknown"},
	{863, "unknown"},
	{864, "unknown"},
	{865, "unknown"},
	{866, "unknown"},
	{867, "unknown"},
	{868, "unknown"},
	{869, "unknown"},
	{870, "unknown"},
	{871, "supfilesrv"},
	{872, "unknown"},
	{874, "unknown"},
	{875, "unknown"},
	{876, "unknown"},
	{877, "unknown"},
	{878, "unknown"},
	{879, "unknown"},
	{881, "unknown"},
	{882, "unknown"},
	{883, "unknown"},
	{884, "unknown"},
	{885, "unknown"},
	{886, "unknown"},
	{887, "unknown"},
	{889, "unknown"},
	{890, "unknown"},
	{891, "unknown"},
	{892, "unknown"},
	{893, "unknown"},
	{894, "unknown"},
	{895, "unknown"},
	{896, "unknown"},
	{897, "unknown"},
	{899, "unknown"},
	{904, "unknown"},
	{905, "unknown"},
	{906, "unknown"},
	{907, "unknown"},
	{908, "unknown"},
	{909, "unknown"},
	{910, "unknown"},
	{913, "unknown"},
	{914, "unknown"},
	{915, "unknown"},
	{916, "unknown"},
	{917, "unknown"},
	{918, "unknown"},
	{919, "unknown"},
	{920, "unknown"},
	{921, "unknown"},
	{922, "unknown"},
	{923, "unknown"},
	{924, "unknown"},
	{925, "unknown"},
	{926, "unknown"},
	{927, "unknown"},
	{928, "unknown"},
	{929, "unknown"},
	{930, "unknown"},
	{931, "unknown"},
	{932, "unknown"},
	{933, "unknown"},
	{934, "unknown"},
	{935, "unknown"},
	{936, "unknown"},
	{937, "unknown"},
	{938, "unknown"},
	{939, "unknown"},
	{940, "unknown"},
	{941, "unknown"},
	{942, "unknown"},
	{943, "unknown"},
	{944, "unknown"},
	{945, "unknown"},
	{946, "unknown"},
	{947, "unknown"},
	{948, "unknown"},
	{949, "unknown"},
	{950, "unknown"},
	{951, "unknown"},
	{952, "unknown"},
	{953, "unknown"},
	{954, "unknown"},
	{955, "unknown"},
	{956, "unknown"},
	{957, "unknown"},
	{958, "unknown"},
	{959, "unknown"},
	{960, "unknown"},
	{961, "unknown"},
	{962, "unknown"},
	{963, "unknown"},
	{964, "unknown"},
	{965, "unknown"},
	{966, "unknown"},
	{967, "unknown"},
	{968, "unknown"},
	{969, "unknown"},
	{970, "unknown"},
	{971, "unknown"},
	{972, "unknown"},
	{973, "unknown"},
	{974, "unknown"},
	{975, "unknown"},
	{976, "unknown"},
	{977, "unknown"},
	{978, "unknown"},
	{979, "unknown"},
	{980, "unknown"},
	{982, "unknown"},
	{983, "unknown"},
	{984, "unknown"},
	{985, "unknown"},
	{986, "unknown"},
	{988, "unknown"},
	{989, "ftps-data"},
	{991, "unknown"},
	{994, "unknown"},
	{996, "unknown"},
	{997, "unknown"},
	{998, "unknown"},
	{1003, "unknown"},
	{1004, "unknown"},
	{1005, "unknown"},
	{1006, "unknown"},
	{1008, "unknown"},
	{1012, "unknown"},
	{1013, "unknown"},
	{1014, "unknown"},
	{1015, "unknown"},
	{1016, "unknown"},
	{1017, "unknown"},
	{1018, "unknown"},
	{1019, "unknown"},
	{1020, "unknown"},
	{1101, "unknown"},
	{1103, "unknown"},
	{1109, "unknown"},
	{1115, "unknown"},
	{1116, "unknown"},
	{1118, "unknown"},
	{1120, "unknown"},
	{1125, "unknown"},
	{1127, "supfiledbg"},
	{1128, "unknown"},
	{1129, "unknown"},
	{1133, "unknown"},
	{1134, "unknown"},
	{1135, "unknown"},
	{1136, "unknown"},
	{1139, "unknown"},
	{1140, "unknown"},
	{1142, "unknown"},
	{1143, "unknown"},
	{1144, "unknown"},
	{1146, "unknown"},
	{1150, "unknown"},
	{1153, "unknown"},
	{1155, "unknown"},
	{1156, "unknown"},
	{1157, "unknown"},
	{1158, "unknown"},
	{1159, "unknown"},
	{1160, "unknown"},
	{1161, "unknown"},
	{1162, "unknown"},
	{1167, "unknown"},
	{1168, "unknown"},
	{1170, "unknown"},
	{1171, "unknown"},
	{1172, "unknown"},
	{1173, "unknown"},
	{1176, "unknown"},
	{1177, "unknown"},
	{1178, "skkserv"},
	{1179, "unknown"},
	{1180, "unknown"},
	{1181, "unknown"},
	{1182, "unknown"},
	{1184, "unknown"},
	{1188, "unknown"},
	{1189, "unknown"},
	{1190, "unknown"},
	{1191, "unknown"},
	{1193, "unknown"},
	{1194, "openvpn"},
	{1195, "unknown"},
	{1196, "unknown"},
	{1197, "unknown"},
	{1200, "unknown"},
	{1202, "unknown"},
	{1203, "unknown"},
	{1204, "unknown"},
	{1205, "unknown"},
	{1206, "unknown"},
	{1207, "unknown"},
	{1208, "unknown"},
	{1209, "unknown"},
	{1210, "unknown"},
	{1211, "unknown"},
	{1212, "unknown"},
	{1214, "unknown"},
	{1215, "unknown"},
	{1219, "unknown"},
	{1220, "unknown"},
	{1221, "unknown"},
	{1222, "unknown"},
	{1223, "unknown"},
	{1224, "unknown"},
	{1225, "unknown"},
	{1226, "unknown"},
	{1227, "unknown"},
	{1228, "unknown"},
	{1229, "unknown"},
	{1230, "unknown"},
	{1231, "unknown"},
	{1232, "unknown"},
	{1235, "unknown"},
	{1237, "unknown"},
	{1238, "unknown"},
	{1239, "unknown"},
	{1240, "unknown"},
	{1241, "unknown"},
	{1242, "unknown"},
	{1243, "unknown"},
	{1245, "unknown"},
	{1246, "unknown"},
	{1249, "unknown"},
	{1250, "unknown"},
	{1251, "unknown"},
	{1252, "unknown"},
	{1253, "unknown"},
	{1254, "unknown"},
	{1255, "unknown"},
	{1256, "unknown"},
	{1257, "unknown"},
	{1258, "unknown"},
	{1260, "unknown"},
	{1261, "unknown"},
	{1262, "unknown"},
	{1263, "unknown"},
	{1264, "unknown"},
	{1265, "unknown"},
	{1266, "unknown"},
	{1267, "unknown"},
	{1268, "unknown"},
	{1269, "unknown"},
	{1270, "unknown"},
	{1273, "unknown"},
	{1274, "unknown"},
	{1275, "unknown"},
	{1276, "unknown"},
	{1278, "unknown"},
	{1279, "unknown"},
	{1280, "unknown"},
	{1281, "unknown"},
	{1282, "unknown"},
	{1283, "unknown"},
	{1284, "unknown"},
	{1285, "unknown"},
	{1286, "unknown"},
	{1288, "unknown"},
	{1289, "unknown"},
	{1290, "unknown"},
	{1291, "unknown"},
	{1292, "unknown"},
	{1293, "unknown"},
	{1294, "unknown"},
	{1295, "unknown"},
	{1297, "unknown"},
	{1298, "unknown"},
	{1299, "unknown"},
	{1302, "unknown"},
	{1303, "unknown"},
	{1304, "unknown"},
	{1305, "unknown"},
	{1306, "unknown"},
	{1307, "unknown"},
	{1308, "unknown"},
	{1312, "unknown"},
	{1313, "xtel"},
	{1314, "xtelw"},
	{1315, "unknown"},
	{1316, "unknown"},
	{1317, "unknown"},
	{1318, "unknown"},
	{1319, "unknown"},
	{1320, "unknown"},
	{1321, "unknown"},
	{1323, "unknown"},
	{1324, "unknown"},
	{1325, "unknown"},
	{1326, "unknown"},
	{1327, "unknown"},
	{1329, "unknown"},
	{1330, "unknown"},
	{1331, "unknown"},
	{1332, "unknown"},
	{1333, "unknown"},
	{1335, "unknown"},
	{1336, "unknown"},
	{1337, "unknown"},
	{1338, "unknown"},
	{1339, "unknown"},
	{1340, "unknown"},
	{1341, "unknown"},
	{1342, "unknown"},
	{1343, "unknown"},
	{1344, "unknown"},
	{1345, "unknown"},
	{1346, "unknown"},
	{1347, "unknown"},
	{1348, "unknown"},
	{1349, "unknown"},
	{1350, "unknown"},
	{1351, "unknown"},
	{1353, "unknown"},
	{1354, "unknown"},
	{1355, "unknown"},
	{1356, "unknown"},
	{1357, "unknown"},
	{1358, "unknown"},
	{1359, "unknown"},
	{1360, "unknown"},
	{1361, "unknown"},
	{1362, "unknown"},
	{1363, "unknown"},
	{1364, "unknown"},
	{1365, "unknown"},
	{1366, "unknown"},
	{1367, "unknown"},
	{1368, "unknown"},
	{1369, "unknown"},
	{1370, "unknown"},
	{1371, "unknown"},
	{1372, "unknown"},
	{1373, "unknown"},
	{1374, "unknown"},
	{1375, "unknown"},
	{1376, "unknown"},
	{1377, "unknown"},
	{1378, "unknown"},
	{1379, "unknown"},
	{1380, "unknown"},
	{1381, "unknown"},
	{1382, "unknown"},
	{1383, "unknown"},
	{1384, "unknown"},
	{1385, "unknown"},
	{1386, "unknown"},
	{1387, "unknown"},
	{1388, "unknown"},
	{1389, "unknown"},
	{1390, "unknown"},
	{1391, "unknown"},
	{1392, "unknown"},
	{1393, "unknown"},
	{1394, "unknown"},
	{1395, "unknown"},
	{1396, "unknown"},
	{1397, "unknown"},
	{1398, "unknown"},
	{1399, "unknown"},
	{1400, "unknown"},
	{1401, "unknown"},
	{1402, "unknown"},
	{1403, "unknown"},
	{1404, "unknown"},
	{1405, "unknown"},
	{1406, "unknown"},
	{1407, "unknown"},
	{1408, "unknown"},
	{1409, "unknown"},
	{1410, "unknown"},
	{1411, "unknown"},
	{1412, "unknown"},
	{1413, "unknown"},
	{1414, "unknown"},
	{1415, "unknown"},
	{1416, "unknown"},
	{1418, "unknown"},
	{1419, "unknown"},
	{1420, "unknown"},
	{1421, "unknown"},
	{1422, "unknown"},
	{1423, "unknown"},
	{1424, "unknown"},
	{1425, "unknown"},
	{1426, "unknown"},
	{1427, "unknown"},
	{1428, "unknown"},
	{1429, "unknown"},
	{1430, "unknown"},
	{1431, "unknown"},
	{1432, "unknown"},
	{1435, "unknown"},
	{1436, "unknown"},
	{1437, "unknown"},
	{1438, "unknown"},
	{1439, "unknown"},
	{1440, "unknown"},
	{1441, "unknown"},
	{1442, "unknown"},
	{1444, "unknown"},
	{1445, "unknown"},
	{1446, "unknown"},
	{1447, "unknown"},
	{1448, "unknown"},
	{1449, "unknown"},
	{1450, "unknown"},
	{1451, "unknown"},
	{1452, "unknown"},
	{1453, "unknown"},
	{1454, "unknown"},
	{1456, "unknown"},
	{1457, "unknown"},
	{1458, "unknown"},
	{1459, "unknown"},
	{1460, "unknown"},
	{1462, "unknown"},
	{1463, "unknown"},
	{1464, "unknown"},
	{1465, "unknown"},
	{1466, "unknown"},
	{1467, "unknown"},
	{1468, "unknown"},
	{1469, "unknown"},
	{1470, "unknown"},
	{1471, "unknown"},
	{1472, "unknown"},
	{1473, "unknown"},
	{1474, "unknown"},
	{1475, "unknown"},
	{1476, "unknown"},
	{1477, "unknown"},
	{1478, "unknown"},
	{1479, "unknown"},
	{1480, "unknown"},
	{1481, "unknown"},
	{1482, "unknown"},
	{1483, "unknown"},
	{1484, "unknown"},
	{1485, "unknown"},
	{1486, "unknown"},
	{1487, "unknown"},
	{1488, "unknown"},
	{1489, "unknown"},
	{1490, "unknown"},
	{1491, "unknown"},
	{1492, "unknown"},
	{1493, "unknown"},
	{1495, "unknown"},
	{1496, "unknown"},
	{1497, "unknown"},
	{1498, "unknown"},
	{1499, "unknown"},
	{1502, "unknown"},
	{1504, "unknown"},
	{1505, "unknown"},
	{1506, "unknown"},
	{1507, "unknown"},
	{1508, "unknown"},
	{1509, "unknown"},
	{1510, "unknown"},
	{1511, "unknown"},
	{1512, "unknown"},
	{1513, "unknown"},
	{1514, "unknown"},
	{1515, "unknown"},
	{1516, "unknown"},
	{1517, "unknown"},
	{1518, "unknown"},
	{1519, "unknown"},
	{1520, "unknown"},
	{1522, "unknown"},
	{1523, "unknown"},
	{1525, "unknown"},
	{1526, "unknown"},
	{1527, "unknown"},
	{1528, "unknown"},
	{1529, "unknown"},
	{1530, "unknown"},
	{1531, "unknown"},
	{1532, "unknown"},
	{1534, "unknown"},
	{1535, "unknown"},
	{1536, "unknown"},
	{1537, "unknown"},
	{1538, "unknown"},
	{1539, "unknown"},
	{1540, "unknown"},
	{1541, "unknown"},
	{1542, "unknown"},
	{1543, "unknown"},
	{1544, "unknown"},
	{1545, "unknown"},
	{1546, "unknown"},
	{1547, "unknown"},
	{1548, "unknown"},
	{1549, "unknown"},
	{1550, "unknown"},
	{1551, "unknown"},
	{1552, "unknown"},
	{1553, "unknown"},
	{1554, "unknown"},
	{1555, "unknown"},
	{1557, "unknown"},
	{1558, "unknown"},
	{1559, "unknown"},
	{1560, "unknown"},
	{1561, "unknown"},
	{1562, "unknown"},
	{1563, "unknown"},
	{1564, "unknown"},
	{1565, "unknown"},
	{1566, "unknown"},
	{1567, "unknown"},
	{1568, "unknown"},
	{1569, "unknown"},
	{1570, "unknown"},
	{1571, "unknown"},
	{1572, "unknown"},
	{1573, "unknown"},
	{1574, "unknown"},
	{1575, "unknown"},
	{1576, "unknown"},
	{1577, "unknown"},
	{1578, "unknown"},
	{1579, "unknown"},
	{1581, "unknown"},
	{1582, "unknown"},
	{1584, "unknown"},
	{1585, "unknown"},
	{1586, "unknown"},
	{1587, "unknown"},
	{1588, "unknown"},
	{1589, "unknown"},
	{1590, "unknown"},
	{1591, "unknown"},
	{1592, "unknown"},
	{1593, "unknown"},
	{1595, "unknown"},
	{1596, "unknown"},
	{1597, "unknown"},
	{1598, "unknown"},
	{1599, "unknown"},
	{1601, "unknown"},
	{1602, "unknown"},
	{1603, "unknown"},
	{1604, "unknown"},
	{1605, "unknown"},
	{1606, "unknown"},
	{1607, "unknown"},
	{1608, "unknown"},
	{1609, "unknown"},
	{1610, "unknown"},
	{1611, "unknown"},
	{1612, "unknown"},
	{1613, "unknown"},
	{1614, "unknown"},
	{1615, "unknown"},
	{1616, "unknown"},
	{1617, "unknown"},
	{1618, "unknown"},
	{1619, "unknown"},
	{1620, "unknown"},
	{1621, "unknown"},
	{1622, "unknown"},
	{1623, "unknown"},
	{1624, "unknown"},
	{1625, "unknown"},
	{1626, "unknown"},
	{1627, "unknown"},
	{1628, "unknown"},
	{1629, "unknown"},
	{1630, "unknown"},
	{1631, "unknown"},
	{1632, "unknown"},
	{1633, "unknown"},
	{1634, "unknown"},
	{1635, "unknown"},
	{1636, "unknown"},
	{1637, "unknown"},
	{1638, "unknown"},
	{1639, "unknown"},
	{1640, "unknown"},
	{1642, "unknown"},
	{1643, "unknown"},
	{1644, "unknown"},
	{1645, "datametrics"},
	{1646, "sa-msg-port"},
	{1647, "unknown"},
	{1648, "unknown"},
	{1649, "kermit"},
	{1650, "unknown"},
	{1651, "unknown"},
	{1652, "unknown"},
	{1653, "unknown"},
	{1654, "unknown"},
	{1655, "unknown"},
	{1656, "unknown"},
	{1657, "unknown"},
	{1659, "unknown"},
	{1660, "unknown"},
	{1661, "unknown"},
	{1662, "unknown"},
	{1663, "unknown"},
	{1664, "unknown"},
	{1665, "unknown"},
	{1667, "unknown"},
	{1668, "unknown"},
	{1669, "unknown"},
	{1670, "unknown"},
	{1671, "unknown"},
	{1672, "unknown"},
	{1673, "unknown"},
	{1674, "unknown"},
	{1675, "unknown"},
	{1676, "unknown"},
	{1677, "groupwise"},
	{1678, "unknown"},
	{1679, "unknown"},
	{1680, "unknown"},
	{1681, "unknown"},
	{1682, "unknown"},
	{1683, "unknown"},
	{1684, "unknown"},
	{1685, "unknown"},
	{1686, "unknown"},
	{1689, "unknown"},
	{1690, "unknown"},
	{1691, "unknown"},
	{1692, "unknown"},
	{1693, "unknown"},
	{1694, "unknown"},
	{1695, "unknown"},
	{1696, "unknown"},
	{1697, "unknown"},
	{1698, "unknown"},
	{1699, "unknown"},
	{1701, "unknown"},
	{1702, "unknown"},
	{1703, "unknown"},
	{1704, "unknown"},
	{1705, "unknown"},
	{1706, "unknown"},
	{1707, "unknown"},
	{1708, "unknown"},
	{1709, "unknown"},
	{1710, "unknown"},
	{1711, "unknown"},
	{1712, "unknown"},
	{1713, "unknown"},
	{1714, "unknown"},
	{1715, "unknown"},
	{1716, "unknown"},
	{1722, "unknown"},
	{1724, "unknown"},
	{1725, "unknown"},
	{1726, "unknown"},
	{1727, "unknown"},
	{1728, "unknown"},
	{1729, "unknown"},
	{1730, "unknown"},
	{1731, "unknown"},
	{1732, "unknown"},
	{1733, "unknown"},
	{1734, "unknown"},
	{1735, "unknown"},
	{1736, "unknown"},
	{1737, "unknown"},
	{1738, "unknown"},
	{1739, "unknown"},
	{1740, "unknown"},
	{1741, "unknown"},
	{1742, "unknown"},
	{1743, "unknown"},
	{1744, "unknown"},
	{1745, "unknown"},
	{1746, "unknown"},
	{1747, "unknown"},
	{1748, "unknown"},
	{1749, "unknown"},
	{1750, "unknown"},
	{1751, "unknown"},
	{1752, "unknown"},
	{1753, "unknown"},
	{1754, "unknown"},
	{1756, "unknown"},
	{1757, "unknown"},
	{1758, "unknown"},
	{1759, "unknown"},
	{1760, "unknown"},
	{1762, "unknown"},
	{1763, "unknown"},
	{1764, "unknown"},
	{1765, "unknown"},
	{1766, "unknown"},
	{1767, "unknown"},
	{1768, "unknown"},
	{1769, "unknown"},
	{1770, "unknown"},
	{1771, "unknown"},
	{1772, "unknown"},
	{1773, "unknown"},
	{1774, "unknown"},
	{1775, "unknown"},
	{1776, "unknown"},
	{1777, "unknown"},
	{1778, "unknown"},
	{1779, "unknown"},
	{1780, "unknown"},
	{1781, "unknown"},
	{1784, "unknown"},
	{1785, "unknown"},
	{1786, "unknown"},
	{1787, "unknown"},
	{1788, "unknown"},
	{1789, "unknown"},
	{1790, "unknown"},
	{1791, "unknown"},
	{1792, "unknown"},
	{1793, "unknown"},
	{1794, "unknown"},
	{1795, "unknown"},
	{1796, "unknown"},
	{1797, "unknown"},
	{1798, "unknown"},
	{1799, "unknown"},
	{1800, "unknown"},
	{1802, "unknown"},
	{1803, "unknown"},
	{1804, "unknown"},
	{1806, "unknown"},
	{1807, "unknown"},
	{1808, "unknown"},
	{1809, "unknown"},
	{1810, "unknown"},
	{1811, "unknown"},
	{1813, "radius-acct"},
	{1814, "unknown"},
	{1815, "unknown"},
	{1816, "unknown"},
	{1817, "unknown"},
	{1818, "unknown"},
	{1819, "unknown"},
	{1820, "unknown"},
	{1821, "unknown"},
	{1822, "unknown"},
	{1823, "unknown"},
	{1824, "unknown"},
	{1825, "unknown"},
	{1826, "unknown"},
	{1827, "unknown"},
	{1828, "unknown"},
	{1829, "unknown"},
	{1830, "unknown"},
	{1831, "unknown"},
	{1832, "unknown"},
	{1833, "unknown"},
	{1834, "unknown"},
	{1835, "unknown"},
	{1836, "unknown"},
	{1837, "unknown"},
	{1838, "unknown"},
	{1841, "unknown"},
	{1842, "unknown"},
	{1843, "unknown"},
	{1844, "unknown"},
	{1845, "unknown"},
	{1846, "unknown"},
	{1847, "unknown"},
	{1848, "unknown"},
	{1849, "unknown"},
	{1850, "unknown"},
	{1851, "unknown"},
	{1852, "unknown"},
	{1853, "unknown"},
	{1854, "unknown"},
	{1855, "unknown"},
	{1856, "unknown"},
	{1857, "unknown"},
	{1858, "unknown"},
	{1859, "unknown"},
	{1860, "unknown"},
	{1861, "unknown"},
	{1865, "unknown"},
	{1866, "unknown"},
	{1867, "unknown"},
	{1868, "unknown"},
	{1869, "unknown"},
	{1870, "unknown"},
	{1871, "unknown"},
	{1872, "unknown"},
	{1873, "unknown"},
	{1874, "unknown"},
	{1876, "unknown"},
	{1877, "unknown"},
	{1878, "unknown"},
	{1879, "unknown"},
	{1880, "unknown"},
	{1881, "unknown"},
	{1882, "unknown"},
	{1884, "unknown"},
	{1885, "unknown"},
	{1886, "unknown"},
	{1887, "unknown"},
	{1888, "unknown"},
	{1889, "unknown"},
	{1890, "unknown"},
	{1891, "unknown"},
	{1892, "unknown"},
	{1893, "unknown"},
	{1894, "unknown"},
	{1895, "unknown"},
	{1896, "unknown"},
	{1897, "unknown"},
	{1898, "unknown"},
	{1899, "unknown"},
	{1901, "unknown"},
	{1902, "unknown"},
	{1903, "unknown"},
	{1904, "unknown"},
	{1905, "unknown"},
	{1906, "unknown"},
	{1907, "unknown"},
	{1908, "unknown"},
	{1909, "unknown"},
	{1910, "unknown"},
	{1911, "unknown"},
	{1912, "unknown"},
	{1913, "unknown"},
	{1915, "unknown"},
	{1916, "unknown"},
	{1917, "unknown"},
	{1918, "unknown"},
	{1919, "unknown"},
	{1920, "unknown"},
	{1921, "unknown"},
	{1922, "unknown"},
	{1923, "unknown"},
	{1924, "unknown"},
	{1925, "unknown"},
	{1926, "unknown"},
	{1927, "unknown"},
	{1928, "unknown"},
	{1929, "unknown"},
	{1930, "unknown"},
	{1931, "unknown"},
	{1932, "unknown"},
	{1933, "unknown"},
	{1934, "unknown"},
	{1936, "unknown"},
	{1937, "unknown"},
	{1938, "unknown"},
	{1939, "unknown"},
	{1940, "unknown"},
	{1941, "unknown"},
	{1942, "unknown"},
	{1943, "unknown"},
	{1944, "unknown"},
	{1945, "unknown"},
	{1946, "unknown"},
	{1948, "unknown"},
	{1949, "unknown"},
	{1950, "unknown"},
	{1951, "unknown"},
	{1952, "unknown"},
	{1953, "unknown"},
	{1954, "unknown"},
	{1955, "unknown"},
	{1956, "unknown"},
	{1957, "unknown"},
	{1958, "unknown"},
	{1959, "unknown"},
	{1960, "unknown"},
	{1961, "unknown"},
	{1962, "unknown"},
	{1963, "unknown"},
	{1964, "unknown"},
	{1965, "unknown"},
	{1966, "unknown"},
	{1967, "unknown"},
	{1968, "unknown"},
	{1969, "unknown"},
	{1970, "unknown"},
	{1973, "unknown"},
	{1975, "unknown"},
	{1976, "unknown"},
	{1977, "unknown"},
	{1978, "unknown"},
	{1979, "unknown"},
	{1980, "unknown"},
	{1981, "unknown"},
	{1982, "unknown"},
	{1983, "unknown"},
	{1985, "unknown"},
	{1986, "unknown"},
	{1987, "unknown"},
	{1988, "unknown"},
	{1989, "unknown"},
	{1990, "unknown"},
	{1991, "unknown"},
	{1992, "unknown"},
	{1993, "unknown"},
	{1994, "unknown"},
	{1995, "unknown"},
	{1996, "unknown"},
	{1997, "unknown"},
	{2011, "unknown"},
	{2012, "unknown"},
	{2014, "unknown"},
	{2015, "unknown"},
	{2016, "unknown"},
	{2017, "unknown"},
	{2018, "unknown"},
	{2019, "unknown"},
	{2023, "unknown"},
	{2024, "unknown"},
	{2025, "unknown"},
	{2026, "unknown"},
	{2027, "unknown"},
	{2028, "unknown"},
	{2029, "unknown"},
	{2031, "unknown"},
	{2032, "unknown"},
	{2036, "unknown"},
	{2037, "unknown"},
	{2039, "unknown"},
	{2044, "unknown"},
	{2050, "unknown"},
	{2051, "unknown"},
	{2052, "unknown"},
	{2053, "unknown"},
	{2054, "unknown"},
	{2055, "unknown"},
	{2056, "unknown"},
	{2057, "unknown"},
	{2058, "unknown"},
	{2059, "unknown"},
	{2060, "unknown"},
	{2061, "unknown"},
	{2062, "unknown"},
	{2063, "unknown"},
	{2064, "unknown"},
	{2066, "unknown"},
	{2067, "unknown"},
	{2069, "unknown"},
	{2070, "unknown"},
	{2071, "unknown"},
	{2072, "unknown"},
	{2073, "unknown"},
	{2074, "unknown"},
	{2075, "unknown"},
	{2076, "unknown"},
	{2077, "unknown"},
	{2078, "unknown"},
	{2079, "unknown"},
	{2080, "unknown"},
	{2081, "unknown"},
	{2082, "unknown"},
	{2083, "unknown"},
	{2084, "unknown"},
	{2085, "unknown"},
	{2086, "gnunet"},
	{2087, "unknown"},
	{2088, "unknown"},
	{2089, "unknown"},
	{2090, "unknown"},
	{2091, "unknown"},
	{2092, "unknown"},
	{2093, "unknown"},
	{2094, "unknown"},
	{2095, "unknown"},
	{2096, "unknown"},
	{2097, "unknown"},
	{2098, "unknown"},
	{2101, "rtcm-sc104"},
	{2102, "unknown"},
	{2104, "unknown"},
	{2108, "unknown"},
	{2109, "unknown"},
	{2110, "unknown"},
	{2112, "unknown"},
	{2113, "unknown"},
	{2114, "unknown"},
	{2115, "unknown"},
	{2116, "unknown"},
	{2117, "unknown"},
	{2118, "unknown"},
	{2120, "unknown"},
	{2122, "unknown"},
	{2123, "unknown"},
	{2124, "unknown"},
	{2125, "unknown"},
	{2127, "unknown"},
	{2128, "unknown"},
	{2129, "unknown"},
	{2130, "unknown"},
	{2131, "unknown"},
	{2132, "unknown"},
	{2133, "unknown"},
	{2134, "unknown"},
	{2136, "unknown"},
	{2137, "unknown"},
	{2138, "unknown"},
	{2139, "unknown"},
	{2140, "unknown"},
	{2141, "unknown"},
	{2142, "unknown"},
	{2143, "unknown"},
	{2145, "unknown"},
	{2146, "unknown"},
	{2147, "unknown"},
	{2148, "unknown"},
	{2149, "unknown"},
	{2150, "unknown"},
	{2151, "unknown"},
	{2152, "unknown"},
	{2153, "unknown"},
	{2154, "unknown"},
	{2155, "unknown"},
	{2156, "unknown"},
	{2157, "unknown"},
	{2158, "unknown"},
	{2159, "unknown"},
	{2162, "unknown"},
	{2163, "unknown"},
	{2164, "unknown"},
	{2165, "unknown"},
	{2166, "unknown"},
	{2167, "unknown"},
	{2168, "unknown"},
	{2169, "unknown"},
	{2171, "unknown"},
	{2172, "unknown"},
	{2173, "unknown"},
	{2174, "unknown"},
	{2175, "unknown"},
	{2176, "unknown"},
	{2177, "unknown"},
	{2178, "unknown"},
	{2180, "unknown"},
	{2181, "unknown"},
	{2182, "unknown"},
	{2183, "unknown"},
	{2184, "unknown"},
	{2185, "unknown"},
	{2186, "unknown"},
	{2187, "unknown"},
	{2188, "unknown"},
	{2189, "unknown"},
	{2192, "unknown"},
	{2193, "unknown"},
	{2194, "unknown"},
	{2195, "unknown"},
	{2197, "unknown"},
	{2198, "unknown"},
	{2199, "unknown"},
	{2201, "unknown"},
	{2202, "unknown"},
	{2203, "unknown"},
	{2204, "unknown"},
	{2205, "unknown"},
	{2206, "unknown"},
	{2207, "unknown"},
	{2208, "unknown"},
	{2209, "unknown"},
	{2210, "unknown"},
	{2211, "unknown"},
	{2212, "unknown"},
	{2213, "unknown"},
	{2214, "unknown"},
	{2215, "unknown"},
	{2216, "unknown"},
	{2217, "unknown"},
	{2218, "unknown"},
	{2219, "unknown"},
	{2220, "unknown"},
	{2221, "unknown"},
	{2223, "unknown"},
	{2224, "unknown"},
	{2225, "unknown"},
	{2226, "unknown"},
	{2227, "unknown"},
	{2228, "unknown"},
	{2229, "unknown"},
	{2230, "unknown"},
	{2231, "unknown"},
	{2232, "unknown"},
	{2233, "unknown"},
	{2234, "unknown"},
	{2235, "unknown"},
	{2236, "unknown"},
	{2237, "unknown"},
	{2238, "unknown"},
	{2239, "unknown"},
	{2240, "unknown"},
	{2241, "unknown"},
	{2242, "unknown"},
	{2243, "unknown"},
	{2244, "unknown"},
	{2245, "unknown"},
	{2246, "unknown"},
	{2247, "unknown"},
	{2248, "unknown"},
	{2249, "unknown"},
	{2250, "unknown"},
	{2252, "unknown"},
	{2253, "unknown"},
	{2254, "unknown"},
	{2255, "unknown"},
	{2256, "unknown"},
	{2257, "unknown"},
	{2258, "unknown"},
	{2259, "unknown"},
	{2261, "unknown"},
	{2262, "unknown"},
	{2263, "unknown"},
	{2264, "unknown"},
	{2265, "unknown"},
	{2266, "unknown"},
	{2267, "unknown"},
	{2268, "unknown"},
	{2269, "unknown"},
	{2270, "unknown"},
	{2271, "unknown"},
	{2272, "unknown"},
	{2273, "unknown"},
	{2274, "unknown"},
	{2275, "unknown"},
	{2276, "unknown"},
	{2277, "unknown"},
	{2278, "unknown"},
	{2279, "unknown"},
	{2280, "unknown"},
	{2281, "unknown"},
	{2282, "unknown"},
	{2283, "unknown"},
	{2284, "unknown"},
	{2285, "unknown"},
	{2286, "unknown"},
	{2287, "unknown"},
	{2289, "unknown"},
	{2290, "unknown"},
	{2291, "unknown"},
	{2292, "unknown"},
	{2293, "unknown"},
	{2294, "unknown"},
	{2295, "unknown"},
	{2296, "unknown"},
	{2297, "unknown"},
	{2298, "unknown"},
	{2299, "unknown"},
	{2300, "unknown"},
	{2302, "unknown"},
	{2303, "unknown"},
	{2304, "unknown"},
	{2305, "unknown"},
	{2306, "unknown"},
	{2307, "unknown"},
	{2308, "unknown"},
	{2309, "unknown"},
	{2310, "unknown"},
	{2311, "unknown"},
	{2312, "unknown"},
	{2313, "unknown"},
	{2314, "unknown"},
	{2315, "unknown"},
	{2316, "unknown"},
	{2317, "unknown"},
	{2318, "unknown"},
	{2319, "unknown"},
	{2320, "unknown"},
	{2321, "unknown"},
	{2322, "unknown"},
	{2324, "unknown"},
	{2325, "unknown"},
	{2326, "unknown"},
	{2327, "unknown"},
	{2328, "unknown"},
	{2329, "unknown"},
	{2330, "unknown"},
	{2331, "unknown"},
	{2332, "unknown"},
	{2333, "unknown"},
	{2334, "unknown"},
	{2335, "unknown"},
	{2336, "unknown"},
	{2337, "unknown"},
	{2338, "unknown"},
	{2339, "unknown"},
	{2340, "unknown"},
	{2341, "unknown"},
	{2342, "unknown"},
	{2343, "unknown"},
	{2344, "unknown"},
	{2345, "unknown"},
	{2346, "unknown"},
	{2347, "unknown"},
	{2348, "unknown"},
	{2349, "unknown"},
	{2350, "unknown"},
	{2351, "unknown"},
	{2352, "unknown"},
	{2353, "unknown"},
	{2354, "unknown"},
	{2355, "unknown"},
	{2356, "unknown"},
	{2357, "unknown"},
	{2358, "unknown"},
	{2359, "unknown"},
	{2360, "unknown"},
	{2361, "unknown"},
	{2362, "unknown"},
	{2363, "unknown"},
	{2364, "unknown"},
	{2365, "unknown"},
	{2367, "unknown"},
	{2368, "unknown"},
	{2369, "unknown"},
	{2370, "unknown"},
	{2371, "unknown"},
	{2372, "unknown"},
	{2373, "unknown"},
	{2374, "unknown"},
	{2376, "unknown"},
	{2377, "unknown"},
	{2378, "unknown"},
	{2379, "unknown"},
	{2380, "unknown"},
	{2384, "unknown"},
	{2385, "unknown"},
	{2386, "unknown"},
	{2387, "unknown"},
	{2388, "unknown"},
	{2389, "unknown"},
	{2390, "unknown"},
	{2391, "unknown"},
	{2392, "unknown"},
	{2395, "unknown"},
	{2396, "unknown"},
	{2397, "unknown"},
	{2398, "unknown"},
	{2400, "unknown"},
	{2402, "unknown"},
	{2403, "unknown"},
	{2404, "unknown"},
	{2405, "unknown"},
	{2406, "unknown"},
	{2407, "unknown"},
	{2408, "unknown"},
	{2409, "unknown"},
	{2410, "unknown"},
	{2411, "unknown"},
	{2412, "unknown"},
	{2413, "unknown"},
	{2414, "unknown"},
	{2415, "unknown"},
	{2416, "unknown"},
	{2417, "unknown"},
	{2418, "unknown"},
	{2419, "unknown"},
	{2420, "unknown"},
	{2421, "unknown"},
	{2422, "unknown"},
	{2423, "unknown"},
	{2424, "unknown"},
	{2425, "unknown"},
	{2426, "unknown"},
	{2427, "unknown"},
	{2428, "unknown"},
	{2429, "unknown"},
	{2430, "venus"},
	{2431, "venus-se"},
	{2432, "codasrv"},
	{2433, "codasrv-se"},
	{2434, "unknown"},
	{2435, "unknown"},
	{2436, "unknown"},
	{2437, "unknown"},
	{2438, "unknown"},
	{2439, "unknown"},
	{2440, "unknown"},
	{2441, "unknown"},
	{2442, "unknown"},
	{2443, "unknown"},
	{2444, "unknown"},
	{2445, "unknown"},
	{2446, "unknown"},
	{2447, "unknown"},
	{2448, "unknown"},
	{2449, "unknown"},
	{2450, "unknown"},
	{2451, "unknown"},
	{2452, "unknown"},
	{2453, "unknown"},
	{2454, "unknown"},
	{2455, "unknown"},
	{2456, "unknown"},
	{2457, "unknown"},
	{2458, "unknown"},
	{2459, "unknown"},
	{2460, "unknown"},
	{2461, "unknown"},
	{2462, "unknown"},
	{2463, "unknown"},
	{2464, "unknown"},
	{2465, "unknown"},
	{2466, "unknown"},
	{2467, "unknown"},
	{2468, "unknown"},
	{2469, "unknown"},
	{2470, "unknown"},
	{2471, "unknown"},
	{2472, "unknown"},
	{2473, "unknown"},
	{2474, "unknown"},
	{2475, "unknown"},
	{2476, "unknown"},
	{2477, "unknown"},
	{2478, "unknown"},
	{2479, "unknown"},
	{2480, "unknown"},
	{2481, "unknown"},
	{2482, "unknown"},
	{2483, "unknown"},
	{2484, "unknown"},
	{2485, "unknown"},
	{2486, "unknown"},
	{2487, "unknown"},
	{2488, "unknown"},
	{2489, "unknown"},
	{2490, "unknown"},
	{2491, "unknown"},
	{2493, "unknown"},
	{2494, "unknown"},
	{2495, "unknown"},
	{2496, "unknown"},
	{2497, "unknown"},
	{2498, "unknown"},
	{2499, "unknown"},
	{2501, "unknown"},
	{2502, "unknown"},
	{2503, "unknown"},
	{2504, "unknown"},
	{2505, "unknown"},
	{2506, "unknown"},
	{2507, "unknown"},
	{2508, "unknown"},
	{2509, "unknown"},
	{2510, "unknown"},
	{2511, "unknown"},
	{2512, "unknown"},
	{2513, "unknown"},
	{2514, "unknown"},
	{2515, "unknown"},
	{2516, "unknown"},
	{2517, "unknown"},
	{2518, "unknown"},
	{2519, "unknown"},
	{2520, "unknown"},
	{2521, "unknown"},
	{2523, "unknown"},
	{2524, "unknown"},
	{2526, "unknown"},
	{2527, "unknown"},
	{2528, "unknown"},
	{2529, "unknown"},
	{2530, "unknown"},
	{2531, "unknown"},
	{2532, "unknown"},
	{2533, "unknown"},
	{2534, "unknown"},
	{2535, "unknown"},
	{2536, "unknown"},
	{2537, "unknown"},
	{2538, "unknown"},
	{2539, "unknown"},
	{2540, "unknown"},
	{2541, "unknown"},
	{2542, "unknown"},
	{2543, "unknown"},
	{2544, "unknown"},
	{2545, "unknown"},
	{2546, "unknown"},
	{2547, "unknown"},
	{2548, "unknown"},
	{2549, "unknown"},
	{2550, "unknown"},
	{2551, "unknown"},
	{2552, "unknown"},
	{2553, "unknown"},
	{2554, "unknown"},
	{2555, "unknown"},
	{2556, "unknown"},
	{2558, "unknown"},
	{2559, "unknown"},
	{2560, "unknown"},
	{2561, "unknown"},
	{2562, "unknown"},
	{2563, "unknown"},
	{2564, "unknown"},
	{2565, "unknown"},
	{2566, "unknown"},
	{2567, "unknown"},
	{2568, "unknown"},
	{2569, "unknown"},
	{2570, "unknown"},
	{2571, "unknown"},
	{2572, "unknown"},
	{2573, "unknown"},
	{2574, "unknown"},
	{2575, "unknown"},
	{2576, "unknown"},
	{2577, "unknown"},
	{2578, "unknown"},
	{2579, "unknown"},
	{2580, "unknown"},
	{2581, "unknown"},
	{2582, "unknown"},
	{2583, "mon"},
	{2584, "unknown"},
	{2585, "unknown"},
	{2586, "unknown"},
	{2587, "unknown"},
	{2588, "unknown"},
	{2589, "unknown"},
	{2590, "unknown"},
	{2591, "unknown"},
	{2592, "unknown"},
	{2593, "unknown"},
	{2594, "unknown"},
	{2595, "unknown"},
	{2596, "unknown"},
	{2597, "unknown"},
	{2598, "unknown"},
	{2599, "unknown"},
	{2600, "zebrasrv"},
	{2603, "ripngd"},
	{2606, "ospf6d"},
	{2609, "unknown"},
	{2610, "unknown"},
	{2611, "unknown"},
	{2612, "unknown"},
	{2613, "unknown"},
	{2614, "unknown"},
	{2615, "unknown"},
	{2616, "unknown"},
	{2617, "unknown"},
	{2618, "unknown"},
	{2619, "unknown"},
	{2620, "unknown"},
	{2621, "unknown"},
	{2622, "unknown"},
	{2623, "unknown"},
	{2624, "unknown"},
	{2625, "unknown"},
	{2626, "unknown"},
	{2627, "unknown"},
	{2628, "dict"},
	{2629, "unknown"},
	{2630, "unknown"},
	{2631, "unknown"},
	{2632, "unknown"},
	{2633, "unknown"},
	{2634, "unknown"},
	{2635, "unknown"},
	{2636, "unknown"},
	{2637, "unknown"},
	{2639, "unknown"},
	{2640, "unknown"},
	{2641, "unknown"},
	{2642, "unknown"},
	{2643, "unknown"},
	{2644, "unknown"},
	{2645, "unknown"},
	{2646, "unknown"},
	{2647, "unknown"},
	{2648, "unknown"},
	{2649, "unknown"},
	{2650, "unknown"},
	{2651, "unknown"},
	{2652, "unknown"},
	{2653, "unknown"},
	{2654, "unknown"},
	{2655, "unknown"},
	{2656, "unknown"},
	{2657, "unknown"},
	{2658, "unknown"},
	{2659, "unknown"},
	{2660, "unknown"},
	{2661, "unknown"},
	{2662, "unknown"},
	{2663, "unknown"},
	{2664, "unknown"},
	{2665, "unknown"},
	{2666, "unknown"},
	{2667, "unknown"},
	{2668, "unknown"},
	{2669, "unknown"},
	{2670, "unknown"},
	{2671, "unknown"},
	{2672, "unknown"},
	{2673, "unknown"},
	{2674, "unknown"},
	{2675, "unknown"},
	{2676, "unknown"},
	{2677, "unknown"},
	{2678, "unknown"},
	{2679, "unknown"},
	{2680, "unknown"},
	{2681, "unknown"},
	{2682, "unknown"},
	{2683, "unknown"},
	{2684, "unknown"},
	{2685, "unknown"},
	{2686, "unknown"},
	{2687, "unknown"},
	{2688, "unknown"},
	{2689, "unknown"},
	{2690, "unknown"},
	{2691, "unknown"},
	{2692, "unknown"},
	{2693, "unknown"},
	{2694, "unknown"},
	{2695, "unknown"},
	{2696, "unknown"},
	{2697, "unknown"},
	{2698, "unknown"},
	{2699, "unknown"},
	{2700, "unknown"},
	{2703, "unknown"},
	{2704, "unknown"},
	{2705, "unknown"},
	{2706, "unknown"},
	{2707, "unknown"},
	{2708, "unknown"},
	{2709, "unknown"},
	{2711, "unknown"},
	{2712, "unknown"},
	{2713, "unknown"},
	{2714, "unknown"},
	{2715, "unknown"},
	{2716, "unknown"},
	{2719, "unknown"},
	{2720, "unknown"},
	{2721, "unknown"},
	{2722, "unknown"},
	{2723, "unknown"},
	{2724, "unknown"},
	{2726, "unknown"},
	{2727, "unknown"},
	{2728, "unknown"},
	{2729, "unknown"},
	{2730, "unknown"},
	{2731, "unknown"},
	{2732, "unknown"},
	{2733, "unknown"},
	{2734, "unknown"},
	{2735, "unknown"},
	{2736, "unknown"},
	{2737, "unknown"},
	{2738, "unknown"},
	{2739, "unknown"},
	{2740, "unknown"},
	{2741, "unknown"},
	{2742, "unknown"},
	{2743, "unknown"},
	{2744, "unknown"},
	{2745, "unknown"},
	{2746, "unknown"},
	{2747, "unknown"},
	{2748, "unknown"},
	{2749, "unknown"},
	{2750, "unknown"},
	{2751, "unknown"},
	{2752, "unknown"},
	{2753, "unknown"},
	{2754, "unknown"},
	{2755, "unknown"},
	{2756, "unknown"},
	{2757, "unknown"},
	{2758, "unknown"},
	{2759, "unknown"},
	{2760, "unknown"},
	{2761, "unknown"},
	{2762, "unknown"},
	{2763, "unknown"},
	{2764, "unknown"},
	{2765, "unknown"},
	{2766, "unknown"},
	{2767, "unknown"},
	{2768, "unknown"},
	{2769, "unknown"},
	{2770, "unknown"},
	{2771, "unknown"},
	{2772, "unknown"},
	{2773, "unknown"},
	{2774, "unknown"},
	{2775, "unknown"},
	{2776, "unknown"},
	{2777, "unknown"},
	{2778, "unknown"},
	{2779, "unknown"},
	{2780, "unknown"},
	{2781, "unknown"},
	{2782, "unknown"},
	{2783, "unknown"},
	{2784, "unknown"},
	{2785, "unknown"},
	{2786, "unknown"},
	{2787, "unknown"},
	{2788, "unknown"},
	{2789, "unknown"},
	{2790, "unknown"},
	{2791, "unknown"},
	{2792, "f5-globalsite"},
	{2793, "unknown"},
	{2794, "unknown"},
	{2795, "unknown"},
	{2796, "unknown"},
	{2797, "unknown"},
	{2798, "unknown"},
	{2799, "unknown"},
	{2801, "unknown"},
	{2802, "unknown"},
	{2803, "unknown"},
	{2804, "unknown"},
	{2805, "unknown"},
	{2806, "unknown"},
	{2807, "unknown"},
	{2808, "unknown"},
	{2810, "unknown"},
	{2812, "unknown"},
	{2813, "unknown"},
	{2814, "unknown"},
	{2815, "unknown"},
	{2816, "unknown"},
	{2817, "unknown"},
	{2818, "unknown"},
	{2819, "unknown"},
	{2820, "unknown"},
	{2821, "unknown"},
	{2822, "unknown"},
	{2823, "unknown"},
	{2824, "unknown"},
	{2825, "unknown"},
	{2826, "unknown"},
	{2827, "unknown"},
	{2828, "unknown"},
	{2829, "unknown"},
	{2830, "unknown"},
	{2831, "unknown"},
	{2832, "unknown"},
	{2833, "unknown"},
	{2834, "unknown"},
	{2835, "unknown"},
	{2836, "unknown"},
	{2837, "unknown"},
	{2838, "unknown"},
	{2839, "unknown"},
	{2840, "unknown"},
	{2841, "unknown"},
	{2842, "unknown"},
	{2843, "unknown"},
	{2844, "unknown"},
	{2845, "unknown"},
	{2846, "unknown"},
	{2847, "unknown"},
	{2848, "unknown"},
	{2849, "unknown"},
	{2850, "unknown"},
	{2851, "unknown"},
	{2852, "unknown"},
	{2853, "unknown"},
	{2854, "unknown"},
	{2855, "unknown"},
	{2856, "unknown"},
	{2857, "unknown"},
	{2858, "unknown"},
	{2859, "unknown"},
	{2860, "unknown"},
	{2861, "unknown"},
	{2862, "unknown"},
	{2863, "unknown"},
	{2864, "unknown"},
	{2865, "unknown"},
	{2866, "unknown"},
	{2867, "unknown"},
	{2868, "unknown"},
	{2870, "unknown"},
	{2871, "unknown"},
	{2872, "unknown"},
	{2873, "unknown"},
	{2874, "unknown"},
	{2876, "unknown"},
	{2877, "unknown"},
	{2878, "unknown"},
	{2879, "unknown"},
	{2880, "unknown"},
	{2881, "unknown"},
	{2882, "unknown"},
	{2883, "unknown"},
	{2884, "unknown"},
	{2885, "unknown"},
	{2886, "unknown"},
	{2887, "unknown"},
	{2888, "unknown"},
	{2889, "unknown"},
	{2890, "unknown"},
	{2891, "unknown"},
	{2892, "unknown"},
	{2893, "unknown"},
	{2894, "unknown"},
	{2895, "unknown"},
	{2896, "unknown"},
	{2897, "unknown"},
	{2898, "unknown"},
	{2899, "unknown"},
	{2900, "unknown"},
	{2901, "unknown"},
	{2902, "unknown"},
	{2903, "unknown"},
	{2904, "unknown"},
	{2905, "unknown"},
	{2906, "unknown"},
	{2907, "unknown"},
	{2908, "unknown"},
	{2911, "unknown"},
	{2912, "unknown"},
	{2913, "unknown"},
	{2914, "unknown"},
	{2915, "unknown"},
	{2916, "unknown"},
	{2917, "unknown"},
	{2918, "unknown"},
	{2919, "unknown"},
	{2921, "unknown"},
	{2922, "unknown"},
	{2923, "unknown"},
	{2924, "unknown"},
	{2925, "unknown"},
	{2926, "unknown"},
	{2927, "unknown"},
	{2928, "unknown"},
	{2929, "unknown"},
	{2930, "unknown"},
	{2931, "unknown"},
	{2932, "unknown"},
	{2933, "unknown"},
	{2934, "unknown"},
	{2935, "unknown"},
	{2936, "unknown"},
	{2937, "unknown"},
	{2938, "unknown"},
	{2939, "unknown"},
	{2940, "unknown"},
	{2941, "unknown"},
	{2942, "unknown"},
	{2943, "unknown"},
	{2944, "unknown"},
	{2945, "unknown"},
	{2946, "unknown"},
	{2947, "gpsd"},
	{2948, "unknown"},
	{2949, "unknown"},
	{2950, "unknown"},
	{2951, "unknown"},
	{2952, "unknown"},
	{2953, "unknown"},
	{2954, "unknown"},
	{2955, "unknown"},
	{2956, "unknown"},
	{2957, "unknown"},
	{2958, "unknown"},
	{2959, "unknown"},
	{2960, "unknown"},
	{2961, "unknown"},
	{2962, "unknown"},
	{2963, "unknown"},
	{2964, "unknown"},
	{2965, "unknown"},
	{2966, "unknown"},
	{2969, "unknown"},
	{2970, "unknown"},
	{2971, "unknown"},
	{2972, "unknown"},
	{2973, "unknown"},
	{2974, "unknown"},
	{2975, "unknown"},
	{2976, "unknown"},
	{2977, "unknown"},
	{2978, "unknown"},
	{2979, "unknown"},
	{2980, "unknown"},
	{2981, "unknown"},
	{2982, "unknown"},
	{2983, "unknown"},
	{2984, "unknown"},
	{2985, "unknown"},
	{2986, "unknown"},
	{2987, "unknown"},
	{2988, "unknown"},
	{2989, "unknown"},
	{2990, "unknown"},
	{2991, "unknown"},
	{2992, "unknown"},
	{2993, "unknown"},
	{2994, "unknown"},
	{2995, "unknown"},
	{2996, "unknown"},
	{2997, "unknown"},
	{2999, "unknown"},
	{3002, "unknown"},
	{3004, "unknown"},
	{3008, "unknown"},
	{3009, "unknown"},
	{3010, "unknown"},
	{3012, "unknown"},
	{3014, "unknown"},
	{3015, "unknown"},
	{3016, "unknown"},
	{3018, "unknown"},
	{3019, "unknown"},
	{3020, "unknown"},
	{3021, "unknown"},
	{3022, "unknown"},
	{3023, "unknown"},
	{3024, "unknown"},
	{3025, "unknown"},
	{3026, "unknown"},
	{3027, "unknown"},
	{3028, "unknown"},
	{3029, "unknown"},
	{3032, "unknown"},
	{3033, "unknown"},
	{3034, "unknown"},
	{3035, "unknown"},
	{3036, "unknown"},
	{3037, "unknown"},
	{3038, "unknown"},
	{3039, "unknown"},
	{3040, "unknown"},
	{3041, "unknown"},
	{3042, "unknown"},
	{3043, "unknown"},
	{3044, "unknown"},
	{3045, "unknown"},
	{3046, "unknown"},
	{3047, "unknown"},
	{3048, "unknown"},
	{3049, "unknown"},
	{3050, "gds-db"},
	{3051, "unknown"},
	{3053, "unknown"},
	{3054, "unknown"},
	{3055, "unknown"},
	{3056, "unknown"},
	{3057, "unknown"},
	{3058, "unknown"},
	{3059, "unknown"},
	{3060, "unknown"},
	{3061, "unknown"},
	{3062, "unknown"},
	{3063, "unknown"},
	{3064, "unknown"},
	{3065, "unknown"},
	{3066, "unknown"},
	{3067, "unknown"},
	{3068, "unknown"},
	{3069, "unknown"},
	{3070, "unknown"},
	{3072, "unknown"},
	{3073, "unknown"},
	{3074, "unknown"},
	{3075, "unknown"},
	{3076, "unknown"},
	{3078, "unknown"},
	{3079, "unknown"},
	{3080, "unknown"},
	{3081, "unknown"},
	{3082, "unknown"},
	{3083, "unknown"},
	{3084, "unknown"},
	{3085, "unknown"},
	{3086, "unknown"},
	{3087, "unknown"},
	{3088, "unknown"},
	{3089, "unknown"},
	{3090, "unknown"},
	{3091, "unknown"},
	{3092, "unknown"},
	{3093, "unknown"},
	{3094, "unknown"},
	{3095, "unknown"},
	{3096, "unknown"},
	{3097, "unknown"},
	{3098, "unknown"},
	{3099, "unknown"},
	{3100, "unknown"},
	{3101, "unknown"},
	{3102, "unknown"},
	{3103, "unknown"},
	{3104, "unknown"},
	{3105, "unknown"},
	{3106, "unknown"},
	{3107, "unknown"},
	{3108, "unknown"},
	{3109, "unknown"},
	{3110, "unknown"},
	{3111, "unknown"},
	{3112, "unknown"},
	{3113, "unknown"},
	{3114, "unknown"},
	{3115, "unknown"},
	{3116, "unknown"},
	{3117, "unknown"},
	{3118, "unknown"},
	{3119, "unknown"},
	{3120, "unknown"},
	{3121, "unknown"},
	{3122, "unknown"},
	{3123, "unknown"},
	{3124, "unknown"},
	{3125, "unknown"},
	{3126, "unknown"},
	{3127, "unknown"},
	{3129, "unknown"},
	{3130, "unknown"},
	{3131, "unknown"},
	{3132, "unknown"},
	{3133, "unknown"},
	{3134, "unknown"},
	{3135, "unknown"},
	{3136, "unknown"},
	{3137, "unknown"},
	{3138, "unknown"},
	{3139, "unknown"},
	{3140, "unknown"},
	{3141, "unknown"},
	{3142, "unknown"},
	{3143, "unknown"},
	{3144, "unknown"},
	{3145, "unknown"},
	{3146, "unknown"},
	{3147, "unknown"},
	{3148, "unknown"},
	{3149, "unknown"},
	{3150, "unknown"},
	{3151, "unknown"},
	{3152, "unknown"},
	{3153, "unknown"},
	{3154, "unknown"},
	{3155, "unknown"},
	{3156, "unknown"},
	{3157, "unknown"},
	{3158, "unknown"},
	{3159, "unknown"},
	{3160, "unknown"},
	{3161, "unknown"},
	{3162, "unknown"},
	{3163, "unknown"},
	{3164, "unknown"},
	{3165, "unknown"},
	{3166, "unknown"},
	{3167, "unknown"},
	{3169, "unknown"},
	{3170, "unknown"},
	{3171, "unknown"},
	{3172, "unknown"},
	{3173, "unknown"},
	{3174, "unknown"},
	{3175, "unknown"},
	{3176, "unknown"},
	{3177, "unknown"},
	{3178, "unknown"},
	{3179, "unknown"},
	{3180, "unknown"},
	{3181, "unknown"},
	{3182, "unknown"},
	{3183, "unknown"},
	{3184, "unknown"},
	{3185, "unknown"},
	{3186, "unknown"},
	{3187, "unknown"},
	{3188, "unknown"},
	{3189, "unknown"},
	{3190, "unknown"},
	{3191, "unknown"},
	{3192, "unknown"},
	{3193, "unknown"},
	{3194, "unknown"},
	{3195, "unknown"},
	{3196, "unknown"},
	{3197, "unknown"},
	{3198, "unknown"},
	{3199, "unknown"},
	{3200, "unknown"},
	{3201, "unknown"},
	{3202, "unknown"},
	{3203, "unknown"},
	{3204, "unknown"},
	{3205, "isns"},
	{3206, "unknown"},
	{3207, "unknown"},
	{3208, "unknown"},
	{3209, "unknown"},
	{3210, "unknown"},
	{3212, "unknown"},
	{3213, "unknown"},
	{3214, "unknown"},
	{3215, "unknown"},
	{3216, "unknown"},
	{3217, "unknown"},
	{3218, "unknown"},
	{3219, "unknown"},
	{3220, "unknown"},
	{3222, "unknown"},
	{3223, "unknown"},
	{3224, "unknown"},
	{3225, "unknown"},
	{3226, "unknown"},
	{3227, "unknown"},
	{3228, "unknown"},
	{3229, "unknown"},
	{3230, "unknown"},
	{3231, "unknown"},
	{3232, "unknown"},
	{3233, "unknown"},
	{3234, "unknown"},
	{3235, "unknown"},
	{3236, "unknown"},
	{3237, "unknown"},
	{3238, "unknown"},
	{3239, "unknown"},
	{3240, "unknown"},
	{3241, "unknown"},
	{3242, "unknown"},
	{3243, "unknown"},
	{3244, "unknown"},
	{3245, "unknown"},
	{3246, "unknown"},
	{3247, "unknown"},
	{3248, "unknown"},
	{3249, "unknown"},
	{3250, "unknown"},
	{3251, "unknown"},
	{3252, "unknown"},
	{3253, "unknown"},
	{3254, "unknown"},
	{3255, "unknown"},
	{3256, "unknown"},
	{3257, "unknown"},
	{3258, "unknown"},
	{3259, "unknown"},
	{3262, "unknown"},
	{3263, "unknown"},
	{3264, "unknown"},
	{3265, "unknown"},
	{3266, "unknown"},
	{3267, "unknown"},
	{3270, "unknown"},
	{3271, "unknown"},
	{3272, "unknown"},
	{3273, "unknown"},
	{3274, "unknown"},
	{3275, "unknown"},
	{3276, "unknown"},
	{3277, "unknown"},
	{3278, "unknown"},
	{3279, "unknown"},
	{3280, "unknown"},
	{3281, "unknown"},
	{3282, "unknown"},
	{3284, "unknown"},
	{3285, "unknown"},
	{3286, "unknown"},
	{3287, "unknown"},
	{3288, "unknown"},
	{3289, "unknown"},
	{3290, "unknown"},
	{3291, "unknown"},
	{3292, "unknown"},
	{3293, "unknown"},
	{3294, "unknown"},
	{3295, "unknown"},
	{3296, "unknown"},
	{3297, "unknown"},
	{3298, "unknown"},
	{3299, "unknown"},
	{3302, "unknown"},
	{3303, "unknown"},
	{3304, "unknown"},
	{3305, "unknown"},
	{3307, "unknown"},
	{3308, "unknown"},
	{3309, "unknown"},
	{3310, "unknown"},
	{3311, "unknown"},
	{3312, "unknown"},
	{3313, "unknown"},
	{3314, "unknown"},
	{3315, "unknown"},
	{3316, "unknown"},
	{3317, "unknown"},
	{3318, "unknown"},
	{3319, "unknown"},
	{3320, "unknown"},
	{3321, "unknown"},
	{3326, "unknown"},
	{3327, "unknown"},
	{3328, "unknown"},
	{3329, "unknown"},
	{3330, "unknown"},
	{3331, "unknown"},
	{3332, "unknown"},
	{3334, "unknown"},
	{3335, "unknown"},
	{3336, "unknown"},
	{3337, "unknown"},
	{3338, "unknown"},
	{3339, "unknown"},
	{3340, "unknown"},
	{3341, "unknown"},
	{3342, "unknown"},
	{3343, "unknown"},
	{3344, "unknown"},
	{3345, "unknown"},
	{3346, "unknown"},
	{3347, "unknown"},
	{3348, "unknown"},
	{3349, "unknown"},
	{3350, "unknown"},
	{3352, "unknown"},
	{3353, "unknown"},
	{3354, "unknown"},
	{3355, "unknown"},
	{3356, "unknown"},
	{3357, "unknown"},
	{3358, "unknown"},
	{3359, "unknown"},
	{3360, "unknown"},
	{3361, "unknown"},
	{3362, "unknown"},
	{3363, "unknown"},
	{3364, "unknown"},
	{3365, "unknown"},
	{3366, "unknown"},
	{3368, "unknown"},
	{3373, "unknown"},
	{3374, "unknown"},
	{3375, "unknown"},
	{3376, "unknown"},
	{3377, "unknown"},
	{3378, "unknown"},
	{3379, "unknown"},
	{3380, "unknown"},
	{3381, "unknown"},
	{3382, "unknown"},
	{3383, "unknown"},
	{3384, "unknown"},
	{3385, "unknown"},
	{3386, "unknown"},
	{3387, "unknown"},
	{3388, "unknown"},
	{3391, "unknown"},
	{3392, "unknown"},
	{3393, "unknown"},
	{3394, "unknown"},
	{3395, "unknown"},
	{3396, "unknown"},
	{3397, "unknown"},
	{3398, "unknown"},
	{3399, "unknown"},
	{3400, "unknown"},
	{3401, "unknown"},
	{3402, "unknown"},
	{3403, "unknown"},
	{3405, "unknown"},
	{3406, "unknown"},
	{3407, "unknown"},
	{3408, "unknown"},
	{3409, "unknown"},
	{3410, "unknown"},
	{3411, "unknown"},
	{3412, "unknown"},
	{3413, "unknown"},
	{3414, "unknown"},
	{3415, "unknown"},
	{3416, "unknown"},
	{3417, "unknown"},
	{3418, "unknown"},
	{3419, "unknown"},
	{3420, "unknown"},
	{3421, "unknown"},
	{3422, "unknown"},
	{3423, "unknown"},
	{3424, "unknown"},
	{3425, "unknown"},
	{3426, "unknown"},
	{3427, "unknown"},
	{3428, "unknown"},
	{3429, "unknown"},
	{3430, "unknown"},
	{3431, "unknown"},
	{3432, "unknown"},
	{3433, "unknown"},
	{3434, "unknown"},
	{3435, "unknown"},
	{3436, "unknown"},
	{3437, "unknown"},
	{3438, "unknown"},
	{3439, "unknown"},
	{3440, "unknown"},
	{3441, "unknown"},
	{3442, "unknown"},
	{3443, "unknown"},
	{3444, "unknown"},
	{3445, "unknown"},
	{3446, "unknown"},
	{3447, "unknown"},
	{3448, "unknown"},
	{3449, "unknown"},
	{3450, "unknown"},
	{3451, "unknown"},
	{3452, "unknown"},
	{3453, "unknown"},
	{3454, "unknown"},
	{3455, "unknown"},
	{3456, "unknown"},
	{3457, "unknown"},
	{3458, "unknown"},
	{3459, "unknown"},
	{3460, "unknown"},
	{3461, "unknown"},
	{3462, "unknown"},
	{3463, "unknown"},
	{3464, "unknown"},
	{3465, "unknown"},
	{3466, "unknown"},
	{3467, "unknown"},
	{3468, "unknown"},
	{3469, "unknown"},
	{3470, "unknown"},
	{3471, "unknown"},
	{3472, "unknown"},
	{3473, "unknown"},
	{3474, "unknown"},
	{3475, "unknown"},
	{3477, "unknown"},
	{3478, "unknown"},
	{3479, "unknown"},
	{3480, "unknown"},
	{3481, "unknown"},
	{3482, "unknown"},
	{3483, "unknown"},
	{3484, "unknown"},
	{3485, "unknown"},
	{3486, "unknown"},
	{3487, "unknown"},
	{3488, "unknown"},
	{3489, "unknown"},
	{3490, "unknown"},
	{3491, "unknown"},
	{3492, "unknown"},
	{3494, "unknown"},
	{3495, "unknown"},
	{3496, "unknown"},
	{3497, "unknown"},
	{3498, "unknown"},
	{3499, "unknown"},
	{3500, "unknown"},
	{3501, "unknown"},
	{3502, "unknown"},
	{3503, "unknown"},
	{3504, "unknown"},
	{3505, "unknown"},
	{3506, "unknown"},
	{3507, "unknown"},
	{3508, "unknown"},
	{3509, "unknown"},
	{3510, "unknown"},
	{3511, "unknown"},
	{3512, "unknown"},
	{3513, "unknown"},
	{3514, "unknown"},
	{3515, "unknown"},
	{3516, "unknown"},
	{3518, "unknown"},
	{3519, "unknown"},
	{3520, "unknown"},
	{3521, "unknown"},
	{3522, "unknown"},
	{3523, "unknown"},
	{3524, "unknown"},
	{3525, "unknown"},
	{3526, "unknown"},
	{3528, "unknown"},
	{3529, "unknown"},
	{3530, "unknown"},
	{3531, "unknown"},
	{3532, "unknown"},
	{3533, "unknown"},
	{3534, "unknown"},
	{3535, "unknown"},
	{3536, "unknown"},
	{3537, "unknown"},
	{3538, "unknown"},
	{3539, "unknown"},
	{3540, "unknown"},
	{3541, "unknown"},
	{3542, "unknown"},
	{3543, "unknown"},
	{3544, "unknown"},
	{3545, "unknown"},
	{3547, "unknown"},
	{3548, "unknown"},
	{3549, "unknown"},
	{3550, "unknown"},
	{3552, "unknown"},
	{3553, "unknown"},
	{3554, "unknown"},
	{3555, "unknown"},
	{3556, "unknown"},
	{3557, "unknown"},
	{3558, "unknown"},
	{3559, "unknown"},
	{3560, "unknown"},
	{3561, "unknown"},
	{3562, "unknown"},
	{3563, "unknown"},
	{3564, "unknown"},
	{3565, "unknown"},
	{3566, "unknown"},
	{3567, "unknown"},
	{3568, "unknown"},
	{3569, "unknown"},
	{3570, "unknown"},
	{3571, "unknown"},
	{3572, "unknown"},
	{3573, "unknown"},
	{3574, "unknown"},
	{3575, "unknown"},
	{3576, "unknown"},
	{3577, "unknown"},
	{3578, "unknown"},
	{3579, "unknown"},
	{3581, "unknown"},
	{3582, "unknown"},
	{3583, "unknown"},
	{3584, "unknown"},
	{3585, "unknown"},
	{3586, "unknown"},
	{3587, "unknown"},
	{3588, "unknown"},
	{3589, "unknown"},
	{3590, "unknown"},
	{3591, "unknown"},
	{3592, "unknown"},
	{3593, "unknown"},
	{3594, "unknown"},
	{3595, "unknown"},
	{3596, "unknown"},
	{3597, "unknown"},
	{3598, "unknown"},
	{3599, "unknown"},
	{3600, "unknown"},
	{3601, "unknown"},
	{3602, "unknown"},
	{3603, "unknown"},
	{3604, "unknown"},
	{3605, "unknown"},
	{3606, "unknown"},
	{3607, "unknown"},
	{3608, "unknown"},
	{3609, "unknown"},
	{3610, "unknown"},
	{3611, "unknown"},
	{3612, "unknown"},
	{3613, "unknown"},
	{3614, "unknown"},
	{3615, "unknown"},
	{3616, "unknown"},
	{3617, "unknown"},
	{3618, "unknown"},
	{3619, "unknown"},
	{3620, "unknown"},
	{3621, "unknown"},
	{3622, "unknown"},
	{3623, "unknown"},
	{3624, "unknown"},
	{3625, "unknown"},
	{3626, "unknown"},
	{3627, "unknown"},
	{3628, "unknown"},
	{3629, "unknown"},
	{3630, "unknown"},
	{3631, "unknown"},
	{3632, "distcc"},
	{3633, "unknown"},
	{3634, "unknown"},
	{3635, "unknown"},
	{3636, "unknown"},
	{3637, "unknown"},
	{3638, "unknown"},
	{3639, "unknown"},
	{3640, "unknown"},
	{3641, "unknown"},
	{3642, "unknown"},
	{3643, "unknown"},
	{3644, "unknown"},
	{3645, "unknown"},
	{3646, "unknown"},
	{3647, "unknown"},
	{3648, "unknown"},
	{3649, "unknown"},
	{3650, "unknown"},
	{3651, "unknown"},
	{3652, "unknown"},
	{3653, "unknown"},
	{3654, "unknown"},
	{3655, "unknown"},
	{3656, "unknown"},
	{3657, "unknown"},
	{3658, "unknown"},
	{3660, "unknown"},
	{3661, "unknown"},
	{3662, "unknown"},
	{3663, "unknown"},
	{3664, "unknown"},
	{3665, "unknown"},
	{3666, "unknown"},
	{3667, "unknown"},
	{3668, "unknown"},
	{3669, "unknown"},
	{3670, "unknown"},
	{3671, "unknown"},
	{3672, "unknown"},
	{3673, "unknown"},
	{3674, "unknown"},
	{3675, "unknown"},
	{3676, "unknown"},
	{3677, "unknown"},
	{3678, "unknown"},
	{3679, "unknown"},
	{3680, "unknown"},
	{3681, "unknown"},
	{3682, "unknown"},
	{3683, "unknown"},
	{3684, "unknown"},
	{3685, "unknown"},
	{3686, "unknown"},
	{3687, "unknown"},
	{3688, "unknown"},
	{3691, "unknown"},
	{3692, "unknown"},
	{3693, "unknown"},
	{3694, "unknown"},
	{3695, "unknown"},
	{3696, "unknown"},
	{3697, "unknown"},
	{3698, "unknown"},
	{3699, "unknown"},
	{3700, "unknown"},
	{3701, "unknown"},
	{3702, "unknown"},
	{3704, "unknown"},
	{3705, "unknown"},
	{3706, "unknown"},
	{3707, "unknown"},
	{3708, "unknown"},
	{3709, "unknown"},
	{3710, "unknown"},
	{3711, "unknown"},
	{3712, "unknown"},
	{3713, "unknown"},
	{3714, "unknown"},
	{3715, "unknown"},
	{3716, "unknown"},
	{3717, "unknown"},
	{3718, "unknown"},
	{3719, "unknown"},
	{3720, "unknown"},
	{3721, "unknown"},
	{3722, "unknown"},
	{3723, "unknown"},
	{3724, "unknown"},
	{3725, "unknown"},
	{3726, "unknown"},
	{3727, "unknown"},
	{3728, "unknown"},
	{3729, "unknown"},
	{3730, "unknown"},
	{3731, "unknown"},
	{3732, "unknown"},
	{3733, "unknown"},
	{3734, "unknown"},
	{3735, "unknown"},
	{3736, "unknown"},
	{3738, "unknown"},
	{3739, "unknown"},
	{3740, "unknown"},
	{3741, "unknown"},
	{3742, "unknown"},
	{3743, "unknown"},
	{3744, "unknown"},
	{3745, "unknown"},
	{3746, "unknown"},
	{3747, "unknown"},
	{3748, "unknown"},
	{3749, "unknown"},
	{3750, "unknown"},
	{3751, "unknown"},
	{3752, "unknown"},
	{3753, "unknown"},
	{3754, "unknown"},
	{3755, "unknown"},
	{3756, "unknown"},
	{3757, "unknown"},
	{3758, "unknown"},
	{3759, "unknown"},
	{3760, "unknown"},
	{3761, "unknown"},
	{3762, "unknown"},
	{3763, "unknown"},
	{3764, "unknown"},
	{3765, "unknown"},
	{3767, "unknown"},
	{3768, "unknown"},
	{3769, "unknown"},
	{3770, "unknown"},
	{3771, "unknown"},
	{3772, "unknown"},
	{3773, "unknown"},
	{3774, "unknown"},
	{3775, "unknown"},
	{3776, "unknown"},
	{3777, "unknown"},
	{3778, "unknown"},
	{3779, "unknown"},
	{3780, "unknown"},
	{3781, "unknown"},
	{3782, "unknown"},
	{3783, "unknown"},
	{3785, "unknown"},
	{3786, "unknown"},
	{3787, "unknown"},
	{3788, "unknown"},
	{3789, "unknown"},
	{3790, "unknown"},
	{3791, "unknown"},
	{3792, "unknown"},
	{3793, "unknown"},
	{3794, "unknown"},
	{3795, "unknown"},
	{3796, "unknown"},
	{3797, "unknown"},
	{3798, "unknown"},
	{3799, "unknown"},
	{3802, "unknown"},
	{3803, "unknown"},
	{3804, "unknown"},
	{3805, "unknown"},
	{3806, "unknown"},
	{3807, "unknown"},
	{3808, "unknown"},
	{3810, "unknown"},
	{3811, "unknown"},
	{3812, "unknown"},
	{3813, "unknown"},
	{3815, "unknown"},
	{3816, "unknown"},
	{3817, "unknown"},
	{3818, "unknown"},
	{3819, "unknown"},
	{3820, "unknown"},
	{3821, "unknown"},
	{3822, "unknown"},
	{3823, "unknown"},
	{3824, "unknown"},
	{3825, "unknown"},
	{3829, "unknown"},
	{3830, "unknown"},
	{3831, "unknown"},
	{3832, "unknown"},
	{3833, "unknown"},
	{3834, "unknown"},
	{3835, "unknown"},
	{3836, "unknown"},
	{3837, "unknown"},
	{3838, "unknown"},
	{3839, "unknown"},
	{3840, "unknown"},
	{3841, "unknown"},
	{3842, "unknown"},
	{3843, "unknown"},
	{3844, "unknown"},
	{3845, "unknown"},
	{3846, "unknown"},
	{3847, "unknown"},
	{3848, "unknown"},
	{3849, "unknown"},
	{3850, "unknown"},
	{3852, "unknown"},
	{3853, "unknown"},
	{3854, "unknown"},
	{3855, "unknown"},
	{3856, "unknown"},
	{3857, "unknown"},
	{3858, "unknown"},
	{3859, "unknown"},
	{3860, "unknown"},
	{3861, "unknown"},
	{3862, "unknown"},
	{3863, "unknown"},
	{3864, "unknown"},
	{3865, "unknown"},
	{3866, "unknown"},
	{3867, "unknown"},
	{3868, "unknown"},
	{3870, "unknown"},
	{3872, "unknown"},
	{3873, "unknown"},
	{3874, "unknown"},
	{3875, "unknown"},
	{3876, "unknown"},
	{3877, "unknown"},
	{3879, "unknown"},
	{3881, "unknown"},
	{3882, "unknown"},
	{3883, "unknown"},
	{3884, "unknown"},
	{3885, "unknown"},
	{3886, "unknown"},
	{3887, "unknown"},
	{3888, "unknown"},
	{3890, "unknown"},
	{3891, "unknown"},
	{3892, "unknown"},
	{3893, "unknown"},
	{3894, "unknown"},
	{3895, "unknown"},
	{3896, "unknown"},
	{3897, "unknown"},
	{3898, "unknown"},
	{3899, "unknown"},
	{3900, "unknown"},
	{3901, "unknown"},
	{3902, "unknown"},
	{3903, "unknown"},
	{3904, "unknown"},
	{3906, "unknown"},
	{3907, "unknown"},
	{3908, "unknown"},
	{3909, "unknown"},
	{3910, "unknown"},
	{3911, "unknown"},
	{3912, "unknown"},
	{3913, "unknown"},
	{3915, "unknown"},
	{3916, "unknown"},
	{3917, "unknown"},
	{3919, "unknown"},
	{3921, "unknown"},
	{3922, "unknown"},
	{3923, "unknown"},
	{3924, "unknown"},
	{3925, "unknown"},
	{3926, "unknown"},
	{3927, "unknown"},
	{3928, "unknown"},
	{3929, "unknown"},
	{3930, "unknown"},
	{3931, "unknown"},
	{3932, "unknown"},
	{3933, "unknown"},
	{3934, "unknown"},
	{3935, "unknown"},
	{3936, "unknown"},
	{3937, "unknown"},
	{3938, "unknown"},
	{3939, "unknown"},
	{3940, "unknown"},
	{3941, "unknown"},
	{3942, "unknown"},
	{3943, "unknown"},
	{3944, "unknown"},
	{3946, "unknown"},
	{3947, "unknown"},
	{3948, "unknown"},
	{3949, "unknown"},
	{3950, "unknown"},
	{3951, "unknown"},
	{3952, "unknown"},
	{3953, "unknown"},
	{3954, "unknown"},
	{3955, "unknown"},
	{3956, "unknown"},
	{3957, "unknown"},
	{3958, "unknown"},
	{3959, "unknown"},
	{3960, "unknown"},
	{3961, "unknown"},
	{3962, "unknown"},
	{3963, "unknown"},
	{3964, "unknown"},
	{3965, "unknown"},
	{3966, "unknown"},
	{3967, "unknown"},
	{3968, "unknown"},
	{3969, "unknown"},
	{3970, "unknown"},
	{3972, "unknown"},
	{3973, "unknown"},
	{3974, "unknown"},
	{3975, "unknown"},
	{3976, "unknown"},
	{3977, "unknown"},
	{3978, "unknown"},
	{3979, "unknown"},
	{3980, "unknown"},
	{3981, "unknown"},
	{3982, "unknown"},
	{3983, "unknown"},
	{3984, "unknown"},
	{3985, "unknown"},
	{3987, "unknown"},
	{3988, "unknown"},
	{3989, "unknown"},
	{3990, "unknown"},
	{3991, "unknown"},
	{3992, "unknown"},
	{3993, "unknown"},
	{3994, "unknown"},
	{3996, "unknown"},
	{3997, "unknown"},
	{3999, "unknown"},
	{4007, "unknown"},
	{4008, "unknown"},
	{4009, "unknown"},
	{4010, "unknown"},
	{4011, "unknown"},
	{4012, "unknown"},
	{4013, "unknown"},
	{4014, "unknown"},
	{4015, "unknown"},
	{4016, "unknown"},
	{4017, "unknown"},
	{4018, "unknown"},
	{4019, "unknown"},
	{4020, "unknown"},
	{4021, "unknown"},
	{4022, "unknown"},
	{4023, "unknown"},
	{4024, "unknown"},
	{4025, "unknown"},
	{4026, "unknown"},
	{4027, "unknown"},
	{4028, "unknown"},
	{4029, "unknown"},
	{4030, "unknown"},
	{4031, "suucp"},
	{4032, "unknown"},
	{4033, "unknown"},
	{4034, "unknown"},
	{4035, "unknown"},
	{4036, "unknown"},
	{4037, "unknown"},
	{4038, "unknown"},
	{4039, "unknown"},
	{4040, "unknown"},
	{4041, "unknown"},
	{4042, "unknown"},
	{4043, "unknown"},
	{4044, "unknown"},
	{4046, "unknown"},
	{4047, "unknown"},
	{4048, "unknown"},
	{4049, "unknown"},
	{4050, "unknown"},
	{4051, "unknown"},
	{4052, "unknown"},
	{4053, "unknown"},
	{4054, "unknown"},
	{4055, "unknown"},
	{4056, "unknown"},
	{4057, "unknown"},
	{4058, "unknown"},
	{4059, "unknown"},
	{4060, "unknown"},
	{4061, "unknown"},
	{4062, "unknown"},
	{4063, "unknown"},
	{4064, "unknown"},
	{4065, "unknown"},
	{4066, "unknown"},
	{4067, "unknown"},
	{4068, "unknown"},
	{4069, "unknown"},
	{4070, "unknown"},
	{4071, "unknown"},
	{4072, "unknown"},
	{4073, "unknown"},
	{4074, "unknown"},
	{4075, "unknown"},
	{4076, "unknown"},
	{4077, "unknown"},
	{4078, "unknown"},
	{4079, "unknown"},
	{4080, "unknown"},
	{4081, "unknown"},
	{4082, "unknown"},
	{4083, "unknown"},
	{4084, "unknown"},
	{4085, "unknown"},
	{4086, "unknown"},
	{4087, "unknown"},
	{4088, "unknown"},
	{4089, "unknown"},
	{4090, "unknown"},
	{4091, "unknown"},
	{4092, "unknown"},
	{4093, "unknown"},
	{4094, "sysrqd"},
	{4095, "unknown"},
	{4096, "unknown"},
	{4097, "unknown"},
	{4098, "unknown"},
	{4099, "unknown"},
	{4100, "unknown"},
	{4101, "unknown"},
	{4102, "unknown"},
	{4103, "unknown"},
	{4104, "unknown"},
	{4105, "unknown"},
	{4106, "unknown"},
	{4107, "unknown"},
	{4108, "unknown"},
	{4109, "unknown"},
	{4110, "unknown"},
	{4112, "unknown"},
	{4113, "unknown"},
	{4114, "unknown"},
	{4115, "unknown"},
	{4116, "unknown"},
	{4117, "unknown"},
	{4118, "unknown"},
	{4119, "unknown"},
	{4120, "unknown"},
	{4121, "unknown"},
	{4122, "unknown"},
	{4123, "unknown"},
	{4124, "unknown"},
	{4127, "unknown"},
	{4128, "unknown"},
	{4130, "unknown"},
	{4131, "unknown"},
	{4132, "unknown"},
	{4133, "unknown"},
	{4134, "unknown"},
	{4135, "unknown"},
	{4136, "unknown"},
	{4137, "unknown"},
	{4138, "unknown"},
	{4139, "unknown"},
	{4140, "unknown"},
	{4141, "unknown"},
	{4142, "unknown"},
	{4143, "unknown"},
	{4144, "unknown"},
	{4145, "unknown"},
	{4146, "unknown"},
	{4147, "unknown"},
	{4148, "unknown"},
	{4149, "unknown"},
	{4150, "unknown"},
	{4151, "unknown"},
	{4152, "unknown"},
	{4153, "unknown"},
	{4154, "unknown"},
	{4155, "unknown"},
	{4156, "unknown"},
	{4157, "unknown"},
	{4158, "unknown"},
	{4159, "unknown"},
	{4160, "unknown"},
	{4161, "unknown"},
	{4162, "unknown"},
	{4163, "unknown"},
	{4164, "unknown"},
	{4165, "unknown"},
	{4166, "unknown"},
	{4167, "unknown"},
	{4168, "unknown"},
	{4169, "unknown"},
	{4170, "unknown"},
	{4171, "unknown"},
	{4172, "unknown"},
	{4173, "unknown"},
	{4174, "unknown"},
	{4175, "unknown"},
	{4176, "unknown"},
	{4177, "unknown"},
	{4178, "unknown"},
	{4179, "unknown"},
	{4180, "unknown"},
	{4181, "unknown"},
	{4182, "unknown"},
	{4183, "unknown"},
	{4184, "unknown"},
	{4185, "unknown"},
	{4186, "unknown"},
	{4187, "unknown"},
	{4188, "unknown"},
	{4189, "unknown"},
	{4190, "sieve"},
	{4191, "unknown"},
	{4192, "unknown"},
	{4193, "unknown"},
	{4194, "unknown"},
	{4195, "unknown"},
	{4196, "unknown"},
	{4197, "unknown"},
	{4198, "unknown"},
	{4199, "unknown"},
	{4200, "unknown"},
	{4201, "unknown"},
	{4202, "unknown"},
	{4203, "unknown"},
	{4204, "unknown"},
	{4205, "unknown"},
	{4206, "unknown"},
	{4207, "unknown"},
	{4208, "unknown"},
	{4209, "unknown"},
	{4210, "unknown"},
	{4211, "unknown"},
	{4212, "unknown"},
	{4213, "unknown"},
	{4214, "unknown"},
	{4215, "unknown"},
	{4216, "unknown"},
	{4217, "unknown"},
	{4218, "unknown"},
	{4219, "unknown"},
	{4220, "unknown"},
	{4221, "unknown"},
	{4222, "unknown"},
	{4223, "unknown"},
	{4225, "unknown"},
	{4226, "unknown"},
	{4227, "unknown"},
	{4228, "unknown"},
	{4229, "unknown"},
	{4230, "unknown"},
	{4231, "unknown"},
	{4232, "unknown"},
	{4233, "unknown"},
	{4234, "unknown"},
	{4235, "unknown"},
	{4236, "unknown"},
	{4237, "unknown"},
	{4238, "unknown"},
	{4239, "unknown"},
	{4240, "unknown"},
	{4241, "unknown"},
	{4243, "unknown"},
	{4244, "unknown"},
	{4245, "unknown"},
	{4246, "unknown"},
	{4247, "unknown"},
	{4248, "unknown"},
	{4249, "unknown"},
	{4250, "unknown"},
	{4251, "unknown"},
	{4252, "unknown"},
	{4253, "unknown"},
	{4254, "unknown"},
	{4255, "unknown"},
	{4256, "unknown"},
	{4257, "unknown"},
	{4258, "unknown"},
	{4259, "unknown"},
	{4260, "unknown"},
	{4261, "unknown"},
	{4262, "unknown"},
	{4263, "unknown"},
	{4264, "unknown"},
	{4265, "unknown"},
	{4266, "unknown"},
	{4267, "unknown"},
	{4268, "unknown"},
	{4269, "unknown"},
	{4270, "unknown"},
	{4271, "unknown"},
	{4272, "unknown"},
	{4273, "unknown"},
	{4274, "unknown"},
	{4275, "unknown"},
	{4276, "unknown"},
	{4277, "unknown"},
	{4278, "unknown"},
	{4280, "unknown"},
	{4281, "unknown"},
	{4282, "unknown"},
	{4283, "unknown"},
	{4284, "unknown"},
	{4285, "unknown"},
	{4286, "unknown"},
	{4287, "unknown"},
	{4288, "unknown"},
	{4289, "unknown"},
	{4290, "unknown"},
	{4291, "unknown"},
	{4292, "unknown"},
	{4293, "unknown"},
	{4294, "unknown"},
	{4295, "unknown"},
	{4296, "unknown"},
	{4297, "unknown"},
	{4298, "unknown"},
	{4299, "unknown"},
	{4300, "unknown"},
	{4301, "unknown"},
	{4302, "unknown"},
	{4303, "unknown"},
	{4304, "unknown"},
	{4305, "unknown"},
	{4306, "unknown"},
	{4307, "unknown"},
	{4308, "unknown"},
	{4309, "unknown"},
	{4310, "unknown"},
	{4311, "unknown"},
	{4312, "unknown"},
	{4313, "unknown"},
	{4314, "unknown"},
	{4315, "unknown"},
	{4316, "unknown"},
	{4317, "unknown"},
	{4318, "unknown"},
	{4319, "unknown"},
	{4320, "unknown"},
	{4322, "unknown"},
	{4323, "unknown"},
	{4324, "unknown"},
	{4325, "unknown"},
	{4326, "unknown"},
	{4327, "unknown"},
	{4328, "unknown"},
	{4329, "unknown"},
	{4330, "unknown"},
	{4331, "unknown"},
	{4332, "unknown"},
	{4333, "unknown"},
	{4334, "unknown"},
	{4335, "unknown"},
	{4336, "unknown"},
	{4337, "unknown"},
	{4338, "unknown"},
	{4339, "unknown"},
	{4340, "unknown"},
	{4341, "unknown"},
	{4342, "unknown"},
	{4344, "unknown"},
	{4345, "unknown"},
	{4346, "unknown"},
	{4347, "unknown"},
	{4348, "unknown"},
	{4349, "unknown"},
	{4350, "unknown"},
	{4351, "unknown"},
	{4352, "unknown"},
	{4353, "f5-iquery"},
	{4354, "unknown"},
	{4355, "unknown"},
	{4356, "unknown"},
	{4357, "unknown"},
	{4358, "unknown"},
	{4359, "unknown"},
	{4360, "unknown"},
	{4361, "unknown"},
	{4362, "unknown"},
	{4363, "unknown"},
	{4364, "unknown"},
	{4365, "unknown"},
	{4366, "unknown"},
	{4367, "unknown"},
	{4368, "unknown"},
	{4369, "epmd"},
	{4370, "unknown"},
	{4371, "unknown"},
	{4372, "unknown"},
	{4373, "remctl"},
	{4374, "unknown"},
	{4375, "unknown"},
	{4376, "unknown"},
	{4377, "unknown"},
	{4378, "unknown"},
	{4379, "unknown"},
	{4380, "unknown"},
	{4381, "unknown"},
	{4382, "unknown"},
	{4383, "unknown"},
	{4384, "unknown"},
	{4385, "unknown"},
	{4386, "unknown"},
	{4387, "unknown"},
	{4388, "unknown"},
	{4389, "unknown"},
	{4390, "unknown"},
	{4391, "unknown"},
	{4392, "unknown"},
	{4393, "unknown"},
	{4394, "unknown"},
	{4395, "unknown"},
	{4396, "unknown"},
	{4397, "unknown"},
	{4398, "unknown"},
	{4399, "unknown"},
	{4400, "unknown"},
	{4401, "unknown"},
	{4402, "unknown"},
	{4403, "unknown"},
	{4404, "unknown"},
	{4405, "unknown"},
	{4406, "unknown"},
	{4407, "unknown"},
	{4408, "unknown"},
	{4409, "unknown"},
	{4410, "unknown"},
	{4411, "unknown"},
	{4412, "unknown"},
	{4413, "unknown"},
	{4414, "unknown"},
	{4415, "unknown"},
	{4416, "unknown"},
	{4417, "unknown"},
	{4418, "unknown"},
	{4419, "unknown"},
	{4420, "unknown"},
	{4421, "unknown"},
	{4422, "unknown"},
	{4423, "unknown"},
	{4424, "unknown"},
	{4425, "unknown"},
	{4426, "unknown"},
	{4427, "unknown"},
	{4428, "unknown"},
	{4429, "unknown"},
	{4430, "unknown"},
	{4431, "unknown"},
	{4432, "unknown"},
	{4433, "unknown"},
	{4434, "unknown"},
	{4435, "unknown"},
	{4436, "unknown"},
	{4437, "unknown"},
	{4438, "unknown"},
	{4439, "unknown"},
	{4440, "unknown"},
	{4441, "unknown"},
	{4442, "unknown"},
	{4447, "unknown"},
	{4448, "unknown"},
	{4450, "unknown"},
	{4451, "unknown"},
	{4452, "unknown"},
	{4453, "unknown"},
	{4454, "unknown"},
	{4455, "unknown"},
	{4456, "unknown"},
	{4457, "unknown"},
	{4458, "unknown"},
	{4459, "unknown"},
	{4460, "ntske"},
	{4461, "unknown"},
	{4462, "unknown"},
	{4463, "unknown"},
	{4464, "unknown"},
	{4465, "unknown"},
	{4466, "unknown"},
	{4467, "unknown"},
	{4468, "unknown"},
	{4469, "unknown"},
	{4470, "unknown"},
	{4471, "unknown"},
	{4472, "unknown"},
	{4473, "unknown"},
	{4474, "unknown"},
	{4475, "unknown"},
	{4476, "unknown"},
	{4477, "unknown"},
	{4478, "unknown"},
	{4479, "unknown"},
	{4480, "unknown"},
	{4481, "unknown"},
	{4482, "unknown"},
	{4483, "unknown"},
	{4484, "unknown"},
	{4485, "unknown"},
	{4486, "unknown"},
	{4487, "unknown"},
	{4488, "unknown"},
	{4489, "unknown"},
	{4490, "unknown"},
	{4491, "unknown"},
	{4492, "unknown"},
	{4493, "unknown"},
	{4494, "unknown"},
	{4495, "unknown"},
	{4496, "unknown"},
	{4497, "unknown"},
	{4498, "unknown"},
	{4499, "unknown"},
	{4500, "unknown"},
	{4501, "unknown"},
	{4502, "unknown"},
	{4503, "unknown"},
	{4504, "unknown"},
	{4505, "unknown"},
	{4506, "unknown"},
	{4507, "unknown"},
	{4508, "unknown"},
	{4509, "unknown"},
	{4510, "unknown"},
	{4511, "unknown"},
	{4512, "unknown"},
	{4513, "unknown"},
	{4514, "unknown"},
	{4515, "unknown"},
	{4516, "unknown"},
	{4517, "unknown"},
	{4518, "unknown"},
	{4519, "unknown"},
	{4520, "unknown"},
	{4521, "unknown"},
	{4522, "unknown"},
	{4523, "unknown"},
	{4524, "unknown"},
	{4525, "unknown"},
	{4526, "unknown"},
	{4527, "unknown"},
	{4528, "unknown"},
	{4529, "unknown"},
	{4530, "unknown"},
	{4531, "unknown"},
	{4532, "unknown"},
	{4533, "unknown"},
	{4534, "unknown"},
	{4535, "unknown"},
	{4536, "unknown"},
	{4537, "unknown"},
}
