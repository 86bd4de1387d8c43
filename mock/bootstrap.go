package mock

// bootstrap is the JavaScript source of the fake host. Substitutions, in
// order: init-data string literal, theme JSON object, platform literal,
// version literal. The fake mirrors the observable behavior of the real
// WebApp object closely enough for the SDK's wrapper layer: a working
// onEvent/offEvent bus, stateful buttons with reference-compared click
// handlers, promise-valued cloud storage, and a browser scaffold
// (location, history, popstate) for the router.
const bootstrap = `
(function() {
	'use strict';

	var calls = [];
	function record(path) { calls.push(path); }

	function makeButton(name, initial) {
		var btn = {
			isVisible: false,
			isActive: true,
			isProgressVisible: false,
			hasShineEffect: false,
			text: initial.text,
			color: initial.color,
			textColor: initial.textColor,
			_clicks: [],
			show: function() { record(name + '.show'); this.isVisible = true; },
			hide: function() { record(name + '.hide'); this.isVisible = false; },
			enable: function() { record(name + '.enable'); this.isActive = true; },
			disable: function() { record(name + '.disable'); this.isActive = false; },
			setText: function(t) { record(name + '.setText'); this.text = t; },
			setColor: function(c) { record(name + '.setColor'); this.color = c; },
			setTextColor: function(c) { record(name + '.setTextColor'); this.textColor = c; },
			showProgress: function(leaveActive) {
				record(name + '.showProgress');
				this.isProgressVisible = true;
				if (!leaveActive) { this.isActive = false; }
			},
			hideProgress: function() {
				record(name + '.hideProgress');
				this.isProgressVisible = false;
				this.isActive = true;
			},
			setParams: function(p) {
				record(name + '.setParams');
				if ('text' in p) { this.text = p.text; }
				if ('color' in p) { this.color = p.color; }
				if ('text_color' in p) { this.textColor = p.text_color; }
				if ('is_active' in p) { this.isActive = p.is_active; }
				if ('is_visible' in p) { this.isVisible = p.is_visible; }
				if ('has_shine_effect' in p) { this.hasShineEffect = p.has_shine_effect; }
				if ('position' in p) { this.position = p.position; }
			},
			onClick: function(fn) { record(name + '.onClick'); this._clicks.push(fn); },
			offClick: function(fn) {
				record(name + '.offClick');
				this._clicks = this._clicks.filter(function(f) { return f !== fn; });
			},
			click: function() {
				this._clicks.slice().forEach(function(f) { f(); });
			}
		};
		return btn;
	}

	function versionAtLeast(current, wanted) {
		var a = String(current).split('.');
		var b = String(wanted).split('.');
		for (var i = 0; i < Math.max(a.length, b.length); i++) {
			var x = parseInt(a[i] || '0', 10);
			var y = parseInt(b[i] || '0', 10);
			if (x !== y) { return x > y; }
		}
		return true;
	}

	var handlers = {};

	var webApp = {
		initData: %s,
		initDataUnsafe: {},
		themeParams: %s,
		platform: %s,
		version: %s,
		colorScheme: 'dark',

		isActive: true,
		isExpanded: false,
		isFullscreen: false,
		isOrientationLocked: false,
		isClosingConfirmationEnabled: false,
		isVerticalSwipesEnabled: true,
		viewportHeight: 600,
		viewportStableHeight: 580,
		safeAreaInset: { top: 0, bottom: 0, left: 0, right: 0 },
		contentSafeAreaInset: { top: 44, bottom: 0, left: 0, right: 0 },

		__calls: calls,

		ready: function() { record('ready'); },
		close: function() { record('close'); },
		expand: function() { record('expand'); this.isExpanded = true; },
		sendData: function(d) { record('sendData'); this._sentData = d; },
		isVersionAtLeast: function(v) { return versionAtLeast(this.version, v); },

		onEvent: function(name, fn) {
			record('onEvent:' + name);
			(handlers[name] = handlers[name] || []).push(fn);
		},
		offEvent: function(name, fn) {
			record('offEvent:' + name);
			if (handlers[name]) {
				handlers[name] = handlers[name].filter(function(f) { return f !== fn; });
			}
		},
		emitEvent: function(name, payload) {
			(handlers[name] || []).slice().forEach(function(f) { f(payload); });
		},
		handlerCount: function(name) { return (handlers[name] || []).length; },

		enableClosingConfirmation: function() { record('enableClosingConfirmation'); this.isClosingConfirmationEnabled = true; },
		disableClosingConfirmation: function() { record('disableClosingConfirmation'); this.isClosingConfirmationEnabled = false; },
		enableVerticalSwipes: function() { record('enableVerticalSwipes'); this.isVerticalSwipesEnabled = true; },
		disableVerticalSwipes: function() { record('disableVerticalSwipes'); this.isVerticalSwipesEnabled = false; },
		requestFullscreen: function() { record('requestFullscreen'); this.isFullscreen = true; },
		exitFullscreen: function() { record('exitFullscreen'); this.isFullscreen = false; },
		lockOrientation: function(o) { record('lockOrientation'); this.isOrientationLocked = true; },
		unlockOrientation: function() { record('unlockOrientation'); this.isOrientationLocked = false; },
		addToHomeScreen: function() { record('addToHomeScreen'); },
		checkHomeScreenStatus: function(cb) { record('checkHomeScreenStatus'); cb('added'); },

		setHeaderColor: function(c) { record('setHeaderColor'); this.headerColor = c; },
		setBackgroundColor: function(c) { record('setBackgroundColor'); this.backgroundColor = c; },
		setBottomBarColor: function(c) { record('setBottomBarColor'); this.bottomBarColor = c; },

		openLink: function(url, opts) { record('openLink'); this._lastLink = url; },
		openTelegramLink: function(url) { record('openTelegramLink'); this._lastLink = url; },
		openInvoice: function(url, cb) { record('openInvoice'); this._invoiceCallback = cb; },
		shareToStory: function(url, params) { record('shareToStory'); },
		switchInlineQuery: function(query, types) { record('switchInlineQuery'); },
		showScanQrPopup: function(params) { record('showScanQrPopup'); },
		closeScanQrPopup: function() { record('closeScanQrPopup'); },
		readTextFromClipboard: function(cb) { record('readTextFromClipboard'); cb('clipboard text'); },
		requestWriteAccess: function(cb) { record('requestWriteAccess'); cb(true); },
		requestContact: function(cb) { record('requestContact'); cb(true); },
		requestPhoneNumber: function(cb) { record('requestPhoneNumber'); cb(true); },
		openSettings: function() { record('openSettings'); },

		MainButton: makeButton('MainButton', { text: 'CONTINUE', color: '#0088cc', textColor: '#ffffff' }),
		SecondaryButton: makeButton('SecondaryButton', { text: 'Cancel', color: '#222529', textColor: '#ffffff' }),
		BackButton: makeButton('BackButton', { text: '', color: '', textColor: '' }),
		SettingsButton: makeButton('SettingsButton', { text: '', color: '', textColor: '' }),

		HapticFeedback: {
			impactOccurred: function(style) { record('HapticFeedback.impactOccurred'); },
			notificationOccurred: function(kind) { record('HapticFeedback.notificationOccurred'); },
			selectionChanged: function() { record('HapticFeedback.selectionChanged'); }
		},

		CloudStorage: {
			_store: {},
			setItem: function(k, v) { record('CloudStorage.setItem'); this._store[k] = v; return Promise.resolve(true); },
			getItem: function(k) { record('CloudStorage.getItem'); return Promise.resolve(this._store[k]); },
			getItems: function(keys) {
				record('CloudStorage.getItems');
				var out = {};
				var store = this._store;
				keys.forEach(function(k) { out[k] = store[k]; });
				return Promise.resolve(out);
			},
			removeItem: function(k) { record('CloudStorage.removeItem'); delete this._store[k]; return Promise.resolve(true); },
			getKeys: function() { record('CloudStorage.getKeys'); return Promise.resolve(Object.keys(this._store)); }
		}
	};

	webApp.SecondaryButton.position = 'left';

	globalThis.Telegram = { WebApp: webApp };

	// Minimal browser scaffold for the router and launch parameters.
	var popstateHandlers = [];
	globalThis.location = { pathname: '/', search: '' };
	globalThis.history = {
		_entries: ['/'],
		pushState: function(state, title, url) {
			this._entries.push(url);
			globalThis.location.pathname = url;
		},
		back: function() {
			if (this._entries.length > 1) {
				this._entries.pop();
				globalThis.location.pathname = this._entries[this._entries.length - 1];
				popstateHandlers.slice().forEach(function(f) { f({}); });
			}
		}
	};
	globalThis.addEventListener = function(name, fn) {
		if (name === 'popstate') { popstateHandlers.push(fn); }
	};
	globalThis.removeEventListener = function(name, fn) {
		if (name === 'popstate') {
			popstateHandlers = popstateHandlers.filter(function(f) { return f !== fn; });
		}
	};
	globalThis.document = { location: globalThis.location };
	globalThis.window = globalThis;
})();
`
