package ethernet

const HeaderSize int = 14

const (
	ETHER_TYPE_IP   EtherType = 0x0800
	ETHER_TYPE_ARP  EtherType = 0x0806
	ETHER_TYPE_IPV6 EtherType = 0x86dd
)

var BroadcastAddress = HardwareAddress{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
