package rsa

// Status is the return status of a native RSA API call. The numeric codes
// mirror the vendor's ReturnStatus enumeration exactly; do not renumber.
type Status int32

const (
	StatusNoError Status = 0

	// Connection
	StatusErrorNotConnected             Status = 101
	StatusErrorIncompatibleFirmware     Status = 102
	StatusErrorBootLoaderNotRunning     Status = 103
	StatusErrorTooManyBootLoaders       Status = 104
	StatusErrorRebootFailure            Status = 105

	// POST
	StatusErrorPOSTFailureFPGALoad Status = 201
	StatusErrorPOSTFailureHiPower  Status = 202
	StatusErrorPOSTFailureI2C      Status = 203
	StatusErrorPOSTFailureGPIF     Status = 204
	StatusErrorPOSTFailureUsbSpeed Status = 205
	StatusErrorPOSTDiagFailure     Status = 206

	// General measurement
	StatusErrorBufferAllocFailed Status = 301
	StatusErrorParameter         Status = 302
	StatusErrorDataNotReady      Status = 304

	// Spectrum
	StatusErrorParameterTraceLength  Status = 1101
	StatusErrorMeasurementNotEnabled Status = 1102
	StatusErrorSpanIsLessThanRBW     Status = 1103
	StatusErrorFrequencyOutOfRange   Status = 1104

	// IF streaming
	StatusErrorStreamADCToDiskFileOpen         Status = 1201
	StatusErrorStreamADCToDiskAlreadyStreaming Status = 1202
	StatusErrorStreamADCToDiskBadPath          Status = 1203
	StatusErrorStreamADCToDiskThreadFailure    Status = 1204
	StatusErrorStreamedFileInvalidHeader       Status = 1205
	StatusErrorStreamedFileOpenFailure         Status = 1206
	StatusErrorStreamingOperationNotSupported  Status = 1207
	StatusErrorStreamingFastForwardTimeInvalid Status = 1208
	StatusErrorStreamingInvalidParameters      Status = 1209
	StatusErrorStreamingEOF                    Status = 1210

	// IQ streaming
	StatusErrorIQStreamInvalidFileDataType   Status = 1301
	StatusErrorIQStreamFileOpenFailed        Status = 1302
	StatusErrorIQStreamBandwidthOutOfRange   Status = 1303

	// Internal
	StatusErrorTimeout                     Status = 3001
	StatusErrorTransfer                    Status = 3002
	StatusErrorFileOpen                    Status = 3003
	StatusErrorFailed                      Status = 3004
	StatusErrorCRC                         Status = 3005
	StatusErrorChangeToFlashMode           Status = 3006
	StatusErrorChangeToRunMode             Status = 3007
	StatusErrorDSPLError                   Status = 3008
	StatusErrorLOLockFailure               Status = 3009
	StatusErrorExternalReferenceNotEnabled Status = 3010
	StatusErrorLogFailure                  Status = 3011
	StatusErrorRegisterIO                  Status = 3012
	StatusErrorFileRead                    Status = 3013
	StatusErrorOperationNotSupportedInSim  Status = 3015

	StatusErrorDisconnectedDeviceRemoved               Status = 3101
	StatusErrorDisconnectedDeviceNodeChangedAndRemoved Status = 3102
	StatusErrorDisconnectedTimeoutWaitingForADCData    Status = 3103
	StatusErrorDisconnectedIOBeginTransfer             Status = 3104

	StatusErrorFPGAConfigureFailure          Status = 3201
	StatusErrorCalCWNormFailure              Status = 3202
	StatusErrorSystemAppDataDirectory        Status = 3203
	StatusErrorFileCreateMRU                 Status = 3204
	StatusErrorDeleteUnsuitableCachePath     Status = 3205
	StatusErrorUnableToSetFilePermissions    Status = 3206
	StatusErrorCreateCachePath               Status = 3207
	StatusErrorCreateCachePathBoost          Status = 3208
	StatusErrorCreateCachePathStd            Status = 3209
	StatusErrorCreateCachePathGen            Status = 3210
	StatusErrorBufferLengthTooSmall          Status = 3211
	StatusErrorRemoveCachePath               Status = 3212
	StatusErrorGetCachingDirectoryBoost      Status = 3213
	StatusErrorGetCachingDirectoryStd        Status = 3214
	StatusErrorGetCachingDirectoryGen        Status = 3215
	StatusErrorInconsistentFileSystem        Status = 3216

	StatusErrorWriteCalConfigHeader              Status = 3301
	StatusErrorWriteCalConfigData                Status = 3302
	StatusErrorReadCalConfigHeader               Status = 3303
	StatusErrorReadCalConfigData                 Status = 3304
	StatusErrorEraseCalConfig                    Status = 3305
	StatusErrorCalConfigFileSize                 Status = 3306
	StatusErrorInvalidCalibConstantFileFormat    Status = 3307
	StatusErrorMismatchCalibConstantsSize        Status = 3308
	StatusErrorCalConfigInvalid                  Status = 3309

	StatusErrorFlashFileSystemUnexpectedSize        Status = 3401
	StatusErrorFlashFileSystemNotMounted            Status = 3402
	StatusErrorFlashFileSystemOutOfRange            Status = 3403
	StatusErrorFlashFileSystemIndexNotFound         Status = 3404
	StatusErrorFlashFileSystemReadErrorCRC          Status = 3405
	StatusErrorFlashFileSystemReadFileMissing       Status = 3406
	StatusErrorFlashFileSystemCreateCacheIndex      Status = 3407
	StatusErrorFlashFileSystemCreateCachedDataFile  Status = 3408
	StatusErrorFlashFileSystemUnsupportedFileSize   Status = 3409
	StatusErrorFlashFileSystemInsufficentSpace      Status = 3410
	StatusErrorFlashFileSystemInconsistentState     Status = 3411
	StatusErrorFlashFileSystemTooManyFiles          Status = 3412
	StatusErrorFlashFileSystemImportFileNotFound    Status = 3413
	StatusErrorFlashFileSystemImportFileReadError   Status = 3414
	StatusErrorFlashFileSystemImportFileError       Status = 3415
	StatusErrorFlashFileSystemFileNotFoundError     Status = 3416
	StatusErrorFlashFileSystemReadBufferTooSmall    Status = 3417
	StatusErrorFlashWriteFailure                    Status = 3418
	StatusErrorFlashReadFailure                     Status = 3419
	StatusErrorFlashFileSystemBadArgument           Status = 3420
	StatusErrorFlashFileSystemCreateFile            Status = 3421

	StatusErrorMonitoringNotSupported Status = 3501
	StatusErrorAuxDataNotAvailable    Status = 3502

	StatusErrorBatteryCommFailure        Status = 3601
	StatusErrorBatteryChargerCommFailure Status = 3602
	StatusErrorBatteryNotPresent         Status = 3603

	StatusErrorESTOutputPathFile   Status = 3701
	StatusErrorESTPathNotDirectory Status = 3702
	StatusErrorESTPathDoesntExist  Status = 3703
	StatusErrorESTUnableToOpenLog  Status = 3704
	StatusErrorESTUnableToOpenLimits Status = 3705

	StatusErrorRevisionDataNotFound Status = 3801

	// Alignment
	StatusError112MHzAlignmentSignalLevelTooLow Status = 3901
	StatusError10MHzAlignmentSignalLevelTooLow  Status = 3902
	StatusErrorInvalidCalConstant               Status = 3903
	StatusErrorNormalizationCacheInvalid        Status = 3904
	StatusErrorInvalidAlignmentCache            Status = 3905

	// Acquisition status
	StatusErrorADCOverrange Status = 9000
	StatusErrorOscUnlock    Status = 9001

	StatusErrorNotSupported Status = 9901

	StatusErrorPlaceholder Status = 9999
	StatusNotImplemented   Status = -1
)

var statusNames = map[Status]string{
	StatusNoError: "noError",

	StatusErrorNotConnected:         "errorNotConnected",
	StatusErrorIncompatibleFirmware: "errorIncompatibleFirmware",
	StatusErrorBootLoaderNotRunning: "errorBootLoaderNotRunning",
	StatusErrorTooManyBootLoaders:   "errorTooManyBootLoadersConnected",
	StatusErrorRebootFailure:        "errorRebootFailure",

	StatusErrorPOSTFailureFPGALoad: "errorPOSTFailureFPGALoad",
	StatusErrorPOSTFailureHiPower:  "errorPOSTFailureHiPower",
	StatusErrorPOSTFailureI2C:      "errorPOSTFailureI2C",
	StatusErrorPOSTFailureGPIF:     "errorPOSTFailureGPIF",
	StatusErrorPOSTFailureUsbSpeed: "errorPOSTFailureUsbSpeed",
	StatusErrorPOSTDiagFailure:     "errorPOSTDiagFailure",

	StatusErrorBufferAllocFailed: "errorBufferAllocFailed",
	StatusErrorParameter:         "errorParameter",
	StatusErrorDataNotReady:      "errorDataNotReady",

	StatusErrorParameterTraceLength:  "errorParameterTraceLength",
	StatusErrorMeasurementNotEnabled: "errorMeasurementNotEnabled",
	StatusErrorSpanIsLessThanRBW:     "errorSpanIsLessThanRBW",
	StatusErrorFrequencyOutOfRange:   "errorFrequencyOutOfRange",

	StatusErrorStreamADCToDiskFileOpen:         "errorStreamADCToDiskFileOpen",
	StatusErrorStreamADCToDiskAlreadyStreaming: "errorStreamADCToDiskAlreadyStreaming",
	StatusErrorStreamADCToDiskBadPath:          "errorStreamADCToDiskBadPath",
	StatusErrorStreamADCToDiskThreadFailure:    "errorStreamADCToDiskThreadFailure",
	StatusErrorStreamedFileInvalidHeader:       "errorStreamedFileInvalidHeader",
	StatusErrorStreamedFileOpenFailure:         "errorStreamedFileOpenFailure",
	StatusErrorStreamingOperationNotSupported:  "errorStreamingOperationNotSupported",
	StatusErrorStreamingFastForwardTimeInvalid: "errorStreamingFastForwardTimeInvalid",
	StatusErrorStreamingInvalidParameters:      "errorStreamingInvalidParameters",
	StatusErrorStreamingEOF:                    "errorStreamingEOF",

	StatusErrorIQStreamInvalidFileDataType: "errorIQStreamInvalidFileDataType",
	StatusErrorIQStreamFileOpenFailed:      "errorIQStreamFileOpenFailed",
	StatusErrorIQStreamBandwidthOutOfRange: "errorIQStreamBandwidthOutOfRange",

	StatusErrorTimeout:                     "errorTimeout",
	StatusErrorTransfer:                    "errorTransfer",
	StatusErrorFileOpen:                    "errorFileOpen",
	StatusErrorFailed:                      "errorFailed",
	StatusErrorCRC:                         "errorCRC",
	StatusErrorChangeToFlashMode:           "errorChangeToFlashMode",
	StatusErrorChangeToRunMode:             "errorChangeToRunMode",
	StatusErrorDSPLError:                   "errorDSPLError",
	StatusErrorLOLockFailure:               "errorLOLockFailure",
	StatusErrorExternalReferenceNotEnabled: "errorExternalReferenceNotEnabled",
	StatusErrorLogFailure:                  "errorLogFailure",
	StatusErrorRegisterIO:                  "errorRegisterIO",
	StatusErrorFileRead:                    "errorFileRead",
	StatusErrorOperationNotSupportedInSim:  "errorOperationNotSupportedInSimMode",

	StatusErrorDisconnectedDeviceRemoved:               "errorDisconnectedDeviceRemoved",
	StatusErrorDisconnectedDeviceNodeChangedAndRemoved: "errorDisconnectedDeviceNodeChangedAndRemoved",
	StatusErrorDisconnectedTimeoutWaitingForADCData:    "errorDisconnectedTimeoutWaitingForADcData",
	StatusErrorDisconnectedIOBeginTransfer:             "errorDisconnectedIOBeginTransfer",

	StatusErrorFPGAConfigureFailure:       "errorFPGAConfigureFailure",
	StatusErrorCalCWNormFailure:           "errorCalCWNormFailure",
	StatusErrorSystemAppDataDirectory:     "errorSystemAppDataDirectory",
	StatusErrorFileCreateMRU:              "errorFileCreateMRU",
	StatusErrorDeleteUnsuitableCachePath:  "errorDeleteUnsuitableCachePath",
	StatusErrorUnableToSetFilePermissions: "errorUnableToSetFilePermissions",
	StatusErrorCreateCachePath:            "errorCreateCachePath",
	StatusErrorCreateCachePathBoost:       "errorCreateCachePathBoost",
	StatusErrorCreateCachePathStd:         "errorCreateCachePathStd",
	StatusErrorCreateCachePathGen:         "errorCreateCachePathGen",
	StatusErrorBufferLengthTooSmall:       "errorBufferLengthTooSmall",
	StatusErrorRemoveCachePath:            "errorRemoveCachePath",
	StatusErrorGetCachingDirectoryBoost:   "errorGetCachingDirectoryBoost",
	StatusErrorGetCachingDirectoryStd:     "errorGetCachingDirectoryStd",
	StatusErrorGetCachingDirectoryGen:     "errorGetCachingDirectoryGen",
	StatusErrorInconsistentFileSystem:     "errorInconsistentFileSystem",

	StatusErrorWriteCalConfigHeader:           "errorWriteCalConfigHeader",
	StatusErrorWriteCalConfigData:             "errorWriteCalConfigData",
	StatusErrorReadCalConfigHeader:            "errorReadCalConfigHeader",
	StatusErrorReadCalConfigData:              "errorReadCalConfigData",
	StatusErrorEraseCalConfig:                 "errorEraseCalConfig",
	StatusErrorCalConfigFileSize:              "errorCalConfigFileSize",
	StatusErrorInvalidCalibConstantFileFormat: "errorInvalidCalibConstantFileFormat",
	StatusErrorMismatchCalibConstantsSize:     "errorMismatchCalibConstantsSize",
	StatusErrorCalConfigInvalid:               "errorCalConfigInvalid",

	StatusErrorFlashFileSystemUnexpectedSize:       "errorFlashFileSystemUnexpectedSize",
	StatusErrorFlashFileSystemNotMounted:           "errorFlashFileSystemNotMounted",
	StatusErrorFlashFileSystemOutOfRange:           "errorFlashFileSystemOutOfRange",
	StatusErrorFlashFileSystemIndexNotFound:        "errorFlashFileSystemIndexNotFound",
	StatusErrorFlashFileSystemReadErrorCRC:         "errorFlashFileSystemReadErrorCRC",
	StatusErrorFlashFileSystemReadFileMissing:      "errorFlashFileSystemReadFileMissing",
	StatusErrorFlashFileSystemCreateCacheIndex:     "errorFlashFileSystemCreateCacheIndex",
	StatusErrorFlashFileSystemCreateCachedDataFile: "errorFlashFileSystemCreateCachedDataFile",
	StatusErrorFlashFileSystemUnsupportedFileSize:  "errorFlashFileSystemUnsupportedFileSize",
	StatusErrorFlashFileSystemInsufficentSpace:     "errorFlashFileSystemInsufficentSpace",
	StatusErrorFlashFileSystemInconsistentState:    "errorFlashFileSystemInconsistentState",
	StatusErrorFlashFileSystemTooManyFiles:         "errorFlashFileSystemTooManyFiles",
	StatusErrorFlashFileSystemImportFileNotFound:   "errorFlashFileSystemImportFileNotFound",
	StatusErrorFlashFileSystemImportFileReadError:  "errorFlashFileSystemImportFileReadError",
	StatusErrorFlashFileSystemImportFileError:      "errorFlashFileSystemImportFileError",
	StatusErrorFlashFileSystemFileNotFoundError:    "errorFlashFileSystemFileNotFoundError",
	StatusErrorFlashFileSystemReadBufferTooSmall:   "errorFlashFileSystemReadBufferTooSmall",
	StatusErrorFlashWriteFailure:                   "errorFlashWriteFailure",
	StatusErrorFlashReadFailure:                    "errorFlashReadFailure",
	StatusErrorFlashFileSystemBadArgument:          "errorFlashFileSystemBadArgument",
	StatusErrorFlashFileSystemCreateFile:           "errorFlashFileSystemCreateFile",

	StatusErrorMonitoringNotSupported: "errorMonitoringNotSupported",
	StatusErrorAuxDataNotAvailable:    "errorAuxDataNotAvailable",

	StatusErrorBatteryCommFailure:        "errorBatteryCommFailure",
	StatusErrorBatteryChargerCommFailure: "errorBatteryChargerCommFailure",
	StatusErrorBatteryNotPresent:         "errorBatteryNotPresent",

	StatusErrorESTOutputPathFile:     "errorESTOutputPathFile",
	StatusErrorESTPathNotDirectory:   "errorESTPathNotDirectory",
	StatusErrorESTPathDoesntExist:    "errorESTPathDoesntExist",
	StatusErrorESTUnableToOpenLog:    "errorESTUnableToOpenLog",
	StatusErrorESTUnableToOpenLimits: "errorESTUnableToOpenLimits",

	StatusErrorRevisionDataNotFound: "errorRevisionDataNotFound",

	StatusError112MHzAlignmentSignalLevelTooLow: "error112MHzAlignmentSignalLevelTooLow",
	StatusError10MHzAlignmentSignalLevelTooLow:  "error10MHzAlignmentSignalLevelTooLow",
	StatusErrorInvalidCalConstant:               "errorInvalidCalConstant",
	StatusErrorNormalizationCacheInvalid:        "errorNormalizationCacheInvalid",
	StatusErrorInvalidAlignmentCache:            "errorInvalidAlignmentCache",

	StatusErrorADCOverrange: "errorADCOverrange",
	StatusErrorOscUnlock:    "errorOscUnlock",

	StatusErrorNotSupported: "errorNotSupported",

	StatusErrorPlaceholder: "errorPlaceholder",
	StatusNotImplemented:   "notImplemented",
}

// Name returns the vendor's symbolic name for the status code.
func (s Status) Name() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "unknownStatus"
}

func (s Status) String() string { return s.Name() }

// Err converts a native status into a *DeviceError for the given operation.
// A noError status yields nil.
func (s Status) Err(op string) error {
	if s == StatusNoError {
		return nil
	}
	return &DeviceError{Op: op, Status: s}
}
