package logger

const MatchStartMsg = "比賽開始！場地 %.0fx%.0f，發球速度 %v"
const ScoredMsg = "%s 得分！目前比分 %d : %d"
const PaddleBounceMsg = "%s 擋到球 ball:%v"
const WallBounceMsg = "球撞到牆壁 ball:%v"

const ConfigLoadedMsg = "設定檔已載入 env:%s view:%s seed:%d"
const ConfigMissingMsg = "找不到設定檔 %s，使用預設值"
const LevelReloadMsg = "logger 設定檔 %s 已變更，level 改為 %s"

const ScreenInitMsg = "終端機畫面初始化完成 %dx%d"
const WindowInitMsg = "視窗初始化完成 %dx%d"
const SoundInitFailedMsg = "音效初始化失敗: %v"

const TickStatsMsg = "tick 統計 count:%d avg:%s min:%s max:%s"
const ShutdownMsg = "遊戲結束，最終比分 %s"
