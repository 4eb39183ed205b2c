// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package gm20b

// BAR0 offsets
const (
	mcBoot0  = 0x00000000
	mcIntr0  = 0x00000100
	mcEnable = 0x00000200

	busBar1Block  = 0x00001704
	busBindStatus = 0x00001710
	busBar2Block  = 0x00001714
	busIntrEn0    = 0x00001140

	fifoRunlistBase  = 0x00002270
	fifoRunlist      = 0x00002274
	fifoEngRunlist   = 0x00002284
	fifoSchedDisable = 0x00002630

	ptimerTime0 = 0x00009400
	ptimerTime1 = 0x00009410

	thermGateCtrl = 0x00020200

	thermGateCtrlEngines = 8

	fuseCtrlOptTPCGPC  = 0x00021838
	fuseOptSecDebugEn  = 0x00021218
	fuseOptPrivSecEn   = 0x00021434
	fuseStatusOptFBIO  = 0x00021c14
	fuseStatusOptGPC   = 0x00021c1c
	fuseStatusOptTPC   = 0x00021c38
	fuseStatusOptFBP   = 0x00021d38
	fuseStatusOptL2FBP = 0x00021d70

	topNumGPCs        = 0x00022430
	topTPCPerGPC      = 0x00022434
	topNumFBPs        = 0x00022438
	topNumCEs         = 0x00022444
	topLTCPerFBP      = 0x00022450
	topNumLTCs        = 0x00022454
	topSlicesPerLTC   = 0x0002245c
	topDeviceInfo     = 0x00022700
	topDeviceInfoSize = 64

	flushFBFlush              = 0x00070000
	flushL2SystemInvalidate   = 0x00070004
	flushL2FlushDirty         = 0x00070010
	flushPending              = 1 << 0
	flushOutstanding          = 1 << 1
	flushPendingOrOutstanding = flushPending | flushOutstanding

	priRingmasterCommand       = 0x0012004c
	priRingmasterEnumLTC       = 0x0012006c
	priRingmasterEnumFBP       = 0x00120074
	priRingmasterEnumGPC       = 0x00120078
	priRingstationSysDecodeCfg = 0x00122204
	priRingstationSysMasterCfg = 0x00122300
	priRingstationGPCMasterCfg = 0x00128300

	trimSysGPCPLLCfg   = 0x00137000
	trimSysGPCPLLCoeff = 0x00137004
)
